package domain

// User roles.
const (
	RoleTeamLead   = "teamLead"
	RoleTeamMember = "teamMember"
)

// User is an account visible to the application. Password material never
// appears here; it stays inside the persistence layer.
type User struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// ProfileUpdate is a partial user patch. Nil fields are left untouched;
// SAVE_PROFILE applies it as a one-level shallow merge.
type ProfileUpdate struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

// Apply merges the non-nil fields into a copy of u.
func (p ProfileUpdate) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.ProfilePic != nil {
		u.ProfilePic = *p.ProfilePic
	}
	return u
}

// CloneUsers returns an independent copy of a user slice.
func CloneUsers(users []User) []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}

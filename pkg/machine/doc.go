// Package machine holds the declarative state machine definition for the
// task-management application.
//
// A Definition is pure data plus pure functions: states, the events each state
// handles, and the reducers a transition runs. It performs no I/O; all side
// effects happen in the collaborators that produce event payloads before the
// event reaches an interpreter.
//
// App returns the application machine itself: the full user journey from
// signup through dashboard, task operations, and profile settings. Two
// interpreter instances are normally built from it — one authoritative, one
// mirrored — and stay in step by replaying the same event stream.
package machine

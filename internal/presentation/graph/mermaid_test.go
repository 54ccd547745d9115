package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stateboard/stateboard/internal/presentation/graph"
	"github.com/stateboard/stateboard/pkg/machine"
)

func TestMermaid_AppMachine(t *testing.T) {
	out := graph.Mermaid(machine.App())

	assert.True(t, strings.HasPrefix(out, "stateDiagram-v2\n"))
	assert.Contains(t, out, "[*] --> signup")
	assert.Contains(t, out, "signup --> login : SIGNUP_SUCCESS")
	assert.Contains(t, out, "login --> dashboard : LOGIN_SUCCESS")
	assert.Contains(t, out, "dashboard --> login : LOGOUT")

	// Internal transitions render as self-loops.
	assert.Contains(t, out, "login --> login : LOGIN_ERROR")

	// The dashboard's nested region is a composite state.
	assert.Contains(t, out, "state dashboard {")
	assert.Contains(t, out, "[*] --> idle")
}

func TestMermaid_Deterministic(t *testing.T) {
	first := graph.Mermaid(machine.App())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, graph.Mermaid(machine.App()))
	}
}

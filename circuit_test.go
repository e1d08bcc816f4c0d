package superstaq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuit_Resolve(t *testing.T) {
	q := Qubit(0)
	circuit := NewCircuit(XPow(q, "a"), Measure(q, "a"))

	resolved, err := circuit.Resolve(Params{"a": 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.5, resolved.Operations[0].Exponent)
	assert.Empty(t, resolved.Operations[0].Symbol)
	// The original circuit is untouched.
	assert.Equal(t, "a", circuit.Operations[0].Symbol)
}

func TestCircuit_Resolve_MissingSymbol(t *testing.T) {
	circuit := NewCircuit(XPow(0, "a"))
	_, err := circuit.Resolve(Params{"b": 1})
	assert.Error(t, err)
}

func TestCircuit_Serialize(t *testing.T) {
	q := Qubit(0)
	circuit := NewCircuit(H(q), CX(q, 1), Measure(q, "m"))

	s, err := circuit.Serialize()
	require.NoError(t, err)

	parsed, err := DeserializeCircuit(s)
	require.NoError(t, err)
	assert.Equal(t, circuit, parsed)
}

func TestCircuit_Serialize_Unresolved(t *testing.T) {
	circuit := NewCircuit(XPow(0, "a"))
	_, err := circuit.Serialize()
	assert.Error(t, err)
}

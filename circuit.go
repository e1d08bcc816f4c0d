package superstaq

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// A Qubit is a line qubit identified by its index.
type Qubit int

// A Gate names one of the operations understood by the server.
type Gate string

// Gates accepted in circuit serialization.
const (
	GateX       Gate = "X"
	GateY       Gate = "Y"
	GateZ       Gate = "Z"
	GateH       Gate = "H"
	GateCX      Gate = "CX"
	GateMeasure Gate = "M"
)

// An Operation applies a gate to one or more qubits. The exponent is either a
// literal value or a named symbol to be filled in by a resolver before
// submission; an empty symbol with a zero exponent means exponent 1.
type Operation struct {
	Gate     Gate    `json:"gate"`
	Qubits   []Qubit `json:"qubits"`
	Exponent float64 `json:"exponent,omitempty"`
	Symbol   string  `json:"symbol,omitempty"`
	Key      string  `json:"key,omitempty"`
}

// A Circuit is an ordered list of operations.
type Circuit struct {
	Operations []Operation `json:"operations"`
}

// NewCircuit returns a circuit over the given operations.
func NewCircuit(ops ...Operation) Circuit {
	return Circuit{Operations: ops}
}

// X applies an X gate to q.
func X(q Qubit) Operation {
	return Operation{Gate: GateX, Qubits: []Qubit{q}}
}

// XPow applies an X gate raised to the named symbolic exponent.
func XPow(q Qubit, symbol string) Operation {
	return Operation{Gate: GateX, Qubits: []Qubit{q}, Symbol: symbol}
}

// H applies a Hadamard gate to q.
func H(q Qubit) Operation {
	return Operation{Gate: GateH, Qubits: []Qubit{q}}
}

// CX applies a controlled X gate with control c and target t.
func CX(c, t Qubit) Operation {
	return Operation{Gate: GateCX, Qubits: []Qubit{c, t}}
}

// Measure measures q under the given key.
func Measure(q Qubit, key string) Operation {
	return Operation{Gate: GateMeasure, Qubits: []Qubit{q}, Key: key}
}

// Params maps symbol names to concrete values.
type Params map[string]float64

// Resolve returns a copy of the circuit with every symbolic exponent replaced
// by its value from params. A symbol missing from params is an error.
func (c Circuit) Resolve(params Params) (Circuit, error) {
	resolved := Circuit{Operations: make([]Operation, len(c.Operations))}
	copy(resolved.Operations, c.Operations)
	for i, op := range resolved.Operations {
		if op.Symbol == "" {
			continue
		}
		v, ok := params[op.Symbol]
		if !ok {
			return Circuit{}, ApiErr{
				usrMsg: fmt.Sprintf("unresolved circuit parameter %q", op.Symbol),
				devMsg: "every symbolic exponent must have a value in the resolver before submission",
			}
		}
		resolved.Operations[i].Exponent = v
		resolved.Operations[i].Symbol = ""
	}
	return resolved, nil
}

// Serialize renders the circuit as its canonical JSON wire form. A circuit
// with unresolved symbols cannot be serialized.
func (c Circuit) Serialize() (string, error) {
	for _, op := range c.Operations {
		if op.Symbol != "" {
			return "", ApiErr{
				usrMsg: fmt.Sprintf("cannot serialize circuit with unresolved parameter %q", op.Symbol),
				devMsg: "call Resolve with a parameter mapping first",
			}
		}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "serializing circuit")
	}
	return string(b), nil
}

// DeserializeCircuit parses the canonical JSON wire form back into a Circuit.
func DeserializeCircuit(s string) (Circuit, error) {
	var c Circuit
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return Circuit{}, errors.Wrap(err, "deserializing circuit")
	}
	return c, nil
}

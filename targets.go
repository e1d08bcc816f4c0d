package superstaq

import "strings"

// TargetAliases maps the recognized shorthand target names to the canonical
// names understood by the server.
var TargetAliases = map[string]string{
	"simulator":           "ibmq_qasm_simulator",
	"qasm_simulator":      "ibmq_qasm_simulator",
	"ibmq_qasm_simulator": "ibmq_qasm_simulator",
	"qpu":                 "qpu",
	"aqt":                 "aqt_device",
	"aqt_device":          "aqt_device",
	"dwave":               "d-wave_advantage",
	"d-wave_advantage":    "d-wave_advantage",
}

// Target describes an execution backend or simulator offered by the server.
type Target struct {
	Name      string `json:"name,omitempty"`
	Simulator bool   `json:"simulator,omitempty"`
	NumQubits int    `json:"num_qubits,omitempty"`
	Status    string `json:"status,omitempty"`
}

// TargetsResponse is the raw target catalog mapping.
type TargetsResponse struct {
	Targets []Target `json:"targets,omitempty"`
}

// Sims returns all the simulator targets out of this catalog.
func (t TargetsResponse) Sims() (sims []Target) {
	for _, tgt := range t.Targets {
		if tgt.Simulator {
			sims = append(sims, tgt)
		}
	}
	return sims
}

// resolveTarget canonicalizes a target name, falling back to the given
// default when the name is empty. Unrecognized names pass through unchanged
// so new server-side targets work without a client update.
func resolveTarget(target, fallback string) string {
	if target == "" {
		target = fallback
	}
	if canonical, exists := TargetAliases[strings.ToLower(target)]; exists {
		return canonical
	}
	return target
}

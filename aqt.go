package superstaq

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// AqtCompilerOutput is the result of compiling a circuit for the AQT device.
// State and PulseList are decoded from the base64 payloads attached to the
// compile response.
type AqtCompilerOutput struct {
	Circuit   Circuit
	State     map[string]interface{}
	PulseList []interface{}
}

// decodePayload unpacks a base64 encoded JSON payload into out.
func decodePayload(encoded string, out interface{}) error {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return errors.Wrap(err, "decoding compile payload")
	}
	return errors.Wrap(json.Unmarshal(raw, out), "unpacking compile payload")
}

// newAqtCompilerOutput maps a raw compile response into its typed form.
// Construction is all-or-nothing: any undecodable field fails the whole
// response.
func newAqtCompilerOutput(resp AqtCompileResponse) (AqtCompilerOutput, error) {
	circuit, err := DeserializeCircuit(resp.CompiledCircuit)
	if err != nil {
		return AqtCompilerOutput{}, err
	}

	var out AqtCompilerOutput
	out.Circuit = circuit
	if err := decodePayload(resp.StateJP, &out.State); err != nil {
		return AqtCompilerOutput{}, err
	}
	if err := decodePayload(resp.PulseListJP, &out.PulseList); err != nil {
		return AqtCompilerOutput{}, err
	}
	return out, nil
}

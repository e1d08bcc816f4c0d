package superstaq

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// A QuboEntry represents a single coefficient in a QUBO problem. If I=J, the
// entry represents a linear term. Otherwise, it represents a quadratic term.
type QuboEntry struct {
	I     int     `json:"i"`
	J     int     `json:"j"`
	Value float64 `json:"value"`
}

// A QUBO is a list of QuboEntry coefficients.
type QUBO []QuboEntry

// A QuboResult is one solution record returned by the annealing backend.
type QuboResult struct {
	Solution       map[int]int8 `json:"solution"`
	Energy         float64      `json:"energy"`
	NumOccurrences int          `json:"num_occurrences"`
}

// decodeQuboSolution unpacks the base64 encoded JSON solution payload into
// its native record form.
func decodeQuboSolution(encoded string) ([]QuboResult, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "decoding qubo solution payload")
	}
	var results []QuboResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, errors.Wrap(err, "unpacking qubo solution records")
	}
	return results, nil
}

package superstaq

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQuboSolution(t *testing.T) {
	payload := `[{"solution": {"0": 0, "1": 1, "3": 1}, "energy": -1, "num_occurrences": 6}]`
	results, err := decodeQuboSolution(base64.StdEncoding.EncodeToString([]byte(payload)))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, QuboResult{
		Solution:       map[int]int8{0: 0, 1: 1, 3: 1},
		Energy:         -1,
		NumOccurrences: 6,
	}, results[0])
}

func TestDecodeQuboSolution_BadPayload(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "not base64", encoded: "!!!"},
		{name: "not json", encoded: base64.StdEncoding.EncodeToString([]byte("pickle"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeQuboSolution(tt.encoded)
			assert.Error(t, err)
		})
	}
}

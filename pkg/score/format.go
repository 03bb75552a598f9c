package score

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const linePrefix = "Ethereum Validator Score: "

// Metric is a score value that survives JSON encoding when it is NaN or infinite.
type Metric float64

// MarshalJSON encodes finite values as numbers and the rest as
// "NaN", "+Inf" or "-Inf".
func (m Metric) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if !IsFinite(f) {
		return json.Marshal(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return json.Marshal(f)
}

// FormatLine renders the single output line with two decimal places.
// Infinities print as "inf" and "-inf", NaN as "NaN".
func FormatLine(evs float64) string {
	switch {
	case math.IsInf(evs, 1):
		return linePrefix + "inf"
	case math.IsInf(evs, -1):
		return linePrefix + "-inf"
	default:
		return fmt.Sprintf("%s%.2f", linePrefix, evs)
	}
}

package rdkit

import (
	"encoding/json"
	"math"
	"strconv"

	desc "github.com/rmera/stereodesc"
)

// DecodeDescriptors decodes the JSON object with descriptor names and values that
// both RDKit's MinimalLib get_descriptors and the Exec script produce.
// Non-numeric members are ignored, except for the strings "NaN", "Inf" and
// "-Inf" (RDKit gives NaN as "NaN" in some versions), which are kept as the
// corresponding float values.
func DecodeDescriptors(data []byte) (desc.Descriptors, error) {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, desc.NewError("malformed descriptor JSON", "", "DecodeDescriptors", true, err)
	}
	ret := make(desc.Descriptors, len(raw))
	for k, v := range raw {
		var f float64
		if err := json.Unmarshal(v, &f); err == nil {
			ret[k] = f
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			continue
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !finite(f) {
			ret[k] = f
		}
	}
	return ret, nil
}

// EncodeDescriptors is the inverse of DecodeDescriptors. Non-finite values,
// which JSON numbers can't hold, are written as strings.
func EncodeDescriptors(d desc.Descriptors) ([]byte, error) {
	out := make(map[string]any, len(d))
	for k, v := range d {
		if finite(v) {
			out[k] = v
		} else {
			out[k] = strconv.FormatFloat(v, 'f', -1, 64) //NaN, +Inf or -Inf
		}
	}
	ret, err := json.Marshal(out)
	if err != nil {
		return nil, desc.NewError("can't encode descriptors", "", "EncodeDescriptors", true, err)
	}
	return ret, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

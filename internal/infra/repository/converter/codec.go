package converter

import (
	jsoniter "github.com/json-iterator/go"
)

// JSONB columns go through jsoniter in its encoding/json-compatible mode.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func marshalStrings(s []string) ([]byte, error) {
	if s == nil {
		s = []string{}
	}
	return json.Marshal(s)
}

func unmarshalStrings(b []byte) ([]string, error) {
	out := []string{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

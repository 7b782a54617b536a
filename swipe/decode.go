package swipe

import "encoding/json"

// DecodeInput parses a match request body, accepting either a bare Input
// object or one wrapped in an outer "input" key.
func DecodeInput(raw []byte) (Input, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Input != nil {
		return *env.Input, nil
	}

	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return Input{}, err
	}
	return in, nil
}

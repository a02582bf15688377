package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const (
	IntentRegenerate  = "RequestRegenerate"
	IntentSelectFloor = "RequestSelectFloor"
)

// RequestRegenerate asks for a new building. A zero seed draws a fresh one;
// an empty preset keeps the current configuration.
type RequestRegenerate struct {
	Seed   int64  `json:"seed"`
	Preset string `json:"preset,omitempty"`
}

type RequestSelectFloor struct {
	Floor int `json:"floor"`
}

package layout

import "fmt"

// ConfigError rejects a configuration before generation starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

type WarningKind string

const (
	// PlacementFailure: a room found no free spot and was skipped.
	PlacementFailure WarningKind = "placement_failure"
	// StairwellUnresolved: no tile had a full runway; the anchor is unvalidated.
	StairwellUnresolved WarningKind = "stairwell_unresolved"
	// IsolatedRoom: a room shares no edge with any other room on its floor.
	IsolatedRoom WarningKind = "isolated_room"
	// RoomShortfall: the partitioner ran out of attempts before the target count.
	RoomShortfall WarningKind = "room_shortfall"
)

// Warning is a non-fatal generation outcome. The layout is still complete.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Floor   int         `json:"floor"`
	Room    int         `json:"room"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] floor %d: %s", w.Kind, w.Floor, w.Message)
}

package cloth

import (
	"fmt"

	"github.com/katalvlaran/cloth2d/core"
)

// HoldState is the interaction state: Free, or Held with the ID of the
// dragged point. The zero value is Free.
type HoldState struct {
	id   core.PointID
	held bool
}

// Free returns the state with no point held.
func Free() HoldState { return HoldState{} }

// Held returns the state holding id.
func Held(id core.PointID) HoldState { return HoldState{id: id, held: true} }

// Held reports the held point, or (core.NoPoint, false) when Free.
func (h HoldState) Held() (core.PointID, bool) {
	if !h.held {
		return core.NoPoint, false
	}

	return h.id, true
}

// String returns "free" or "held(<id>)".
func (h HoldState) String() string {
	if !h.held {
		return "free"
	}

	return fmt.Sprintf("held(%d)", h.id)
}

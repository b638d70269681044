package mapeditor

import "github.com/alexanderramin/swimadmin/internal/domain"

// Interaction is the editor's single gesture state. Exactly one value is
// held at a time, so a drag and a connection draw can never overlap.
type Interaction interface {
	interaction()
}

// Idle means no gesture is in progress.
type Idle struct{}

// Dragging moves NodeID; Offset is the pointer position relative to the
// node's top-left corner when the drag began.
type Dragging struct {
	NodeID string
	Offset domain.Point
}

// Connecting draws a connection starting at From.
type Connecting struct {
	From string
}

func (Idle) interaction()       {}
func (Dragging) interaction()   {}
func (Connecting) interaction() {}

// InteractionName returns a short label for logs and the wire protocol.
func InteractionName(i Interaction) string {
	switch i.(type) {
	case Dragging:
		return "dragging"
	case Connecting:
		return "connecting"
	default:
		return "idle"
	}
}

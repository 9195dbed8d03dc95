// Package dom is an in-memory model of the task page: the four elements the
// widget attaches to, the list entries it creates and the events flowing
// through their controls. It is not safe for concurrent use; callers serialize
// access on their UI thread.
package dom

// Element ids the task page exposes.
const (
	IDTaskInput = "task-value"
	IDSubmit    = "add-btn"
	IDError     = "error-msg"
	IDTaskList  = "task-list"
)

// Element is anything addressable by id inside a Document.
type Element interface {
	ID() string
}

// Event is dispatched to the handlers of a control when it is activated.
type Event struct {
	defaultPrevented bool
}

// PreventDefault suppresses the control's default action (form navigation).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Control is an activatable element such as a button or an icon.
type Control interface {
	OnActivate(handler func(*Event))
}

// TextField is a single-line text input.
type TextField interface {
	Value() string
	SetValue(value string)
}

// StatusArea displays a transient message.
type StatusArea interface {
	SetText(text string)
	SetVisible(visible bool)
}

// ListPanel is the container of rendered entries.
type ListPanel interface {
	SetVisible(visible bool)
	Append(text string) ListItem
}

// ListItem is a rendered entry with its own delete affordance.
type ListItem interface {
	DeleteControl() Control
	Remove()
}

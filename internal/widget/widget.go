package widget

import (
	"fmt"
	"strings"

	"github.com/ldi/tasklist/internal/dom"
	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/internal/schedule"
	"github.com/ldi/tasklist/pkg/models"
)

// State is the state of the submission controller.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateAccepted
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Config is the configuration of the task list widget.
type Config struct {
	Input     dom.TextField
	Submit    dom.Control
	Status    dom.StatusArea
	List      dom.ListPanel
	Scheduler schedule.Scheduler
	Logger    log.Logger
	// OnTransition, if set, is called on every controller state change.
	OnTransition func(from, to State)
}

func (c *Config) defaults() error {
	if c.Input == nil {
		return fmt.Errorf("input field is required: %w", models.ErrNotValid)
	}
	if c.Submit == nil {
		return fmt.Errorf("submit control is required: %w", models.ErrNotValid)
	}
	if c.Status == nil {
		return fmt.Errorf("status area is required: %w", models.ErrNotValid)
	}
	if c.List == nil {
		return fmt.Errorf("list panel is required: %w", models.ErrNotValid)
	}
	if c.Scheduler == nil {
		return fmt.Errorf("scheduler is required: %w", models.ErrNotValid)
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Widget is the task list: it reads the input field, validates it, renders
// accepted tasks and wires their deletion. All methods must be called from the
// UI thread that owns the page elements.
type Widget struct {
	input        dom.TextField
	status       dom.StatusArea
	list         dom.ListPanel
	scheduler    schedule.Scheduler
	logger       log.Logger
	onTransition func(from, to State)

	state       State
	cancelClear schedule.CancelFunc
}

// New binds a widget to the given elements and registers its submit handler.
func New(cfg Config) (*Widget, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	w := &Widget{
		input:        cfg.Input,
		status:       cfg.Status,
		list:         cfg.List,
		scheduler:    cfg.Scheduler,
		logger:       cfg.Logger,
		onTransition: cfg.OnTransition,
		state:        StateIdle,
	}
	cfg.Submit.OnActivate(func(ev *dom.Event) { w.Submit(ev) })

	return w, nil
}

// Mount looks up the four task page elements in doc and binds a widget to them.
func Mount(doc *dom.Document, scheduler schedule.Scheduler, logger log.Logger) (*Widget, error) {
	input, err := dom.Get[dom.TextField](doc, dom.IDTaskInput)
	if err != nil {
		return nil, fmt.Errorf("could not mount task input: %w", err)
	}
	submit, err := dom.Get[dom.Control](doc, dom.IDSubmit)
	if err != nil {
		return nil, fmt.Errorf("could not mount submit control: %w", err)
	}
	status, err := dom.Get[dom.StatusArea](doc, dom.IDError)
	if err != nil {
		return nil, fmt.Errorf("could not mount error area: %w", err)
	}
	list, err := dom.Get[dom.ListPanel](doc, dom.IDTaskList)
	if err != nil {
		return nil, fmt.Errorf("could not mount task list: %w", err)
	}

	return New(Config{
		Input:     input,
		Submit:    submit,
		Status:    status,
		List:      list,
		Scheduler: scheduler,
		Logger:    logger,
	})
}

// InputValue returns the trimmed content of the input field.
func (w *Widget) InputValue() string {
	return strings.TrimSpace(w.input.Value())
}

// Validate accepts any non-empty text. An empty text shows the rejection
// message and (re)starts its clear countdown; at most one countdown is pending.
func (w *Widget) Validate(text string) bool {
	if text == "" {
		w.status.SetText(models.RejectionMessage)
		w.status.SetVisible(true)

		w.cancelPendingClear()
		w.cancelClear = w.scheduler.Schedule(models.ErrorDisplayDuration, w.clearStatus)

		return false
	}

	w.cancelPendingClear()
	w.status.SetText("")
	w.status.SetVisible(false)

	return true
}

// Render appends text to the task panel with a trash control that removes
// exactly this entry. The panel stays visible once shown, even when emptied.
func (w *Widget) Render(text string) {
	w.list.SetVisible(true)

	item := w.list.Append(text)
	item.DeleteControl().OnActivate(func(*dom.Event) {
		item.Remove()
		w.logger.Debugf("Task removed: %q", text)
	})
}

// Submit handles an activation of the submit control.
func (w *Widget) Submit(ev *dom.Event) models.ValidationState {
	if ev != nil {
		ev.PreventDefault()
	}

	w.transition(StateValidating)
	if !w.Validate(w.InputValue()) {
		w.transition(StateRejected)
		w.logger.Debugf("Task rejected: empty input")
		w.transition(StateIdle)
		return models.ValidationState{Outcome: models.ValidationRejected, Message: models.RejectionMessage}
	}
	w.transition(StateAccepted)

	text := w.InputValue()
	w.Render(text)
	w.input.SetValue("")
	w.logger.Debugf("Task accepted: %q", text)

	w.transition(StateIdle)
	return models.ValidationState{Outcome: models.ValidationAccepted}
}

// State returns the controller state. Outside of a submit it is always idle.
func (w *Widget) State() State {
	return w.state
}

// HasPendingClear reports whether a rejection message is waiting to be cleared.
func (w *Widget) HasPendingClear() bool {
	return w.cancelClear != nil
}

func (w *Widget) clearStatus() {
	w.cancelClear = nil
	w.status.SetText("")
	w.status.SetVisible(false)
}

func (w *Widget) cancelPendingClear() {
	if w.cancelClear != nil {
		w.cancelClear()
		w.cancelClear = nil
	}
}

func (w *Widget) transition(to State) {
	from := w.state
	w.state = to
	if w.onTransition != nil {
		w.onTransition(from, to)
	}
}

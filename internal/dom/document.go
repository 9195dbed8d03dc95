package dom

import (
	"fmt"

	"github.com/ldi/tasklist/pkg/models"
)

// Document indexes elements by id.
type Document struct {
	elements map[string]Element
}

func NewDocument() *Document {
	return &Document{elements: map[string]Element{}}
}

// Add registers el under its id.
func (d *Document) Add(el Element) error {
	if el == nil || el.ID() == "" {
		return fmt.Errorf("element without id: %w", models.ErrNotValid)
	}
	if _, ok := d.elements[el.ID()]; ok {
		return fmt.Errorf("element %q: %w", el.ID(), models.ErrAlreadyExists)
	}
	d.elements[el.ID()] = el
	return nil
}

// Lookup returns the element registered under id.
func (d *Document) Lookup(id string) (Element, error) {
	el, ok := d.elements[id]
	if !ok {
		return nil, fmt.Errorf("element %q: %w", id, models.ErrNotFound)
	}
	return el, nil
}

// Get returns the element registered under id as a T.
func Get[T any](d *Document, id string) (T, error) {
	var zero T
	el, err := d.Lookup(id)
	if err != nil {
		return zero, err
	}
	typed, ok := el.(T)
	if !ok {
		return zero, fmt.Errorf("element %q has type %T: %w", id, el, models.ErrNotValid)
	}
	return typed, nil
}

// TaskPage is the document behind the task list: one input, one submit
// button, one error container and one list container.
type TaskPage struct {
	*Document

	Input  *Input
	Submit *Button
	Status *Status
	List   *List
}

// PageView is a read-only snapshot of the task page used by renderers.
type PageView struct {
	InputValue  string
	Status      models.StatusView
	ListVisible bool
	Entries     []models.TaskEntry
}

// NewTaskPage builds the task page with the standard element ids.
func NewTaskPage() *TaskPage {
	p := &TaskPage{
		Document: NewDocument(),
		Input:    NewInput(IDTaskInput),
		Submit:   NewButton(IDSubmit),
		Status:   NewStatus(IDError),
		List:     NewList(IDTaskList),
	}
	for _, el := range []Element{p.Input, p.Submit, p.Status, p.List} {
		// Ids are distinct constants.
		_ = p.Add(el)
	}
	return p
}

func (p *TaskPage) View() PageView {
	return PageView{
		InputValue:  p.Input.Value(),
		Status:      p.Status.View(),
		ListVisible: p.List.Visible(),
		Entries:     p.List.Entries(),
	}
}

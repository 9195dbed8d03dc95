package dom

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ldi/tasklist/pkg/models"
)

// Input is a text input element.
type Input struct {
	id    string
	value string
}

func NewInput(id string) *Input {
	return &Input{id: id}
}

func (i *Input) ID() string            { return i.id }
func (i *Input) Value() string         { return i.value }
func (i *Input) SetValue(value string) { i.value = value }

// Button is a clickable control. Handlers run in registration order.
type Button struct {
	id       string
	handlers []func(*Event)
}

func NewButton(id string) *Button {
	return &Button{id: id}
}

func (b *Button) ID() string { return b.id }

func (b *Button) OnActivate(handler func(*Event)) {
	b.handlers = append(b.handlers, handler)
}

// Activate simulates a click and returns the dispatched event.
func (b *Button) Activate() *Event {
	ev := &Event{}
	for _, h := range b.handlers {
		h(ev)
	}
	return ev
}

// Status is the error message container. It carries the "show" class while
// visible.
type Status struct {
	id      string
	text    string
	visible bool
}

func NewStatus(id string) *Status {
	return &Status{id: id}
}

func (s *Status) ID() string              { return s.id }
func (s *Status) Text() string            { return s.text }
func (s *Status) SetText(text string)     { s.text = text }
func (s *Status) Visible() bool           { return s.visible }
func (s *Status) SetVisible(visible bool) { s.visible = visible }

func (s *Status) View() models.StatusView {
	return models.StatusView{Text: s.text, Visible: s.visible}
}

// List is the task panel. It starts hidden.
type List struct {
	id      string
	visible bool
	items   []*Item
}

func NewList(id string) *List {
	return &List{id: id}
}

func (l *List) ID() string              { return l.id }
func (l *List) Visible() bool           { return l.visible }
func (l *List) SetVisible(visible bool) { l.visible = visible }

// Append adds a new entry at the end of the list. Each entry gets a fresh
// element id and a trash control.
func (l *List) Append(text string) ListItem {
	id := uuid.NewString()
	item := &Item{
		id:    id,
		text:  text,
		list:  l,
		trash: NewButton(id + "-trash"),
	}
	l.items = append(l.items, item)
	return item
}

// Items returns the entries currently attached, in display order.
func (l *List) Items() []*Item {
	items := make([]*Item, len(l.items))
	copy(items, l.items)
	return items
}

// Item returns the attached entry with the given element id.
func (l *List) Item(id string) (*Item, error) {
	for _, it := range l.items {
		if it.id == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("list item %q: %w", id, models.ErrNotFound)
}

// Entries returns the attached entries as plain values.
func (l *List) Entries() []models.TaskEntry {
	entries := make([]models.TaskEntry, 0, len(l.items))
	for _, it := range l.items {
		entries = append(entries, models.TaskEntry{ID: it.id, Text: it.text})
	}
	return entries
}

func (l *List) remove(target *Item) {
	for i, it := range l.items {
		if it == target {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Item is a rendered list entry.
type Item struct {
	id    string
	text  string
	list  *List
	trash *Button
}

func (it *Item) ID() string     { return it.id }
func (it *Item) Text() string   { return it.text }
func (it *Item) Trash() *Button { return it.trash }

func (it *Item) DeleteControl() Control {
	return it.trash
}

// Remove detaches the entry from its list. Removing twice is a no-op.
func (it *Item) Remove() {
	if it.list == nil {
		return
	}
	it.list.remove(it)
	it.list = nil
}

// Attached reports whether the entry is still part of a list.
func (it *Item) Attached() bool {
	return it.list != nil
}

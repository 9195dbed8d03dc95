package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldi/tasklist/internal/dom"
	"github.com/ldi/tasklist/pkg/models"
)

func TestDocumentGet(t *testing.T) {
	page := dom.NewTaskPage()

	tests := map[string]struct {
		id     string
		get    func(d *dom.Document, id string) error
		expErr error
	}{
		"input by its id": {
			id: dom.IDTaskInput,
			get: func(d *dom.Document, id string) error {
				_, err := dom.Get[*dom.Input](d, id)
				return err
			},
		},
		"list as a list panel": {
			id: dom.IDTaskList,
			get: func(d *dom.Document, id string) error {
				_, err := dom.Get[dom.ListPanel](d, id)
				return err
			},
		},
		"missing id should fail with not found": {
			id: "nope",
			get: func(d *dom.Document, id string) error {
				_, err := dom.Get[*dom.Input](d, id)
				return err
			},
			expErr: models.ErrNotFound,
		},
		"wrong element type should fail with not valid": {
			id: dom.IDError,
			get: func(d *dom.Document, id string) error {
				_, err := dom.Get[dom.TextField](d, id)
				return err
			},
			expErr: models.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.get(page.Document, test.id)
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentAddDuplicate(t *testing.T) {
	d := dom.NewDocument()
	require.NoError(t, d.Add(dom.NewInput("a")))

	err := d.Add(dom.NewButton("a"))
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	err = d.Add(dom.NewButton(""))
	assert.ErrorIs(t, err, models.ErrNotValid)
}

func TestButtonActivate(t *testing.T) {
	b := dom.NewButton("btn")
	var order []int
	b.OnActivate(func(*dom.Event) { order = append(order, 1) })
	b.OnActivate(func(ev *dom.Event) {
		order = append(order, 2)
		ev.PreventDefault()
	})

	ev := b.Activate()
	assert.Equal(t, []int{1, 2}, order)
	assert.True(t, ev.DefaultPrevented())

	assert.False(t, dom.NewButton("plain").Activate().DefaultPrevented())
}

func TestListAppendAndRemove(t *testing.T) {
	l := dom.NewList(dom.IDTaskList)
	assert.False(t, l.Visible())

	a := l.Append("A")
	l.Append("B")
	c := l.Append("C")

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)

	a.Remove()
	a.Remove()
	c.Remove()

	entries = l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "B", entries[0].Text)

	item, err := l.Item(entries[0].ID)
	require.NoError(t, err)
	assert.True(t, item.Attached())

	_, err = l.Item("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTaskPageView(t *testing.T) {
	page := dom.NewTaskPage()
	page.Input.SetValue("draft")
	page.Status.SetText("oops")
	page.Status.SetVisible(true)
	page.List.SetVisible(true)
	page.List.Append("A")

	view := page.View()
	assert.Equal(t, "draft", view.InputValue)
	assert.Equal(t, models.StatusView{Text: "oops", Visible: true}, view.Status)
	assert.True(t, view.ListVisible)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "A", view.Entries[0].Text)
}

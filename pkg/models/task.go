package models

import "time"

// RejectionMessage is shown in the error area when an empty task is submitted.
const RejectionMessage = "Sorry, the activity should not be empty!"

// ErrorDisplayDuration is how long the rejection message stays on screen.
const ErrorDisplayDuration = 3000 * time.Millisecond

// Task is a single to-do entry. It has no identity beyond its text and its
// position in the rendered list.
type Task struct {
	Text string `json:"text"`
}

// TaskEntry is a rendered list entry as exposed to the outer surfaces.
// ID is the element id of the list item, not an identity of the task.
type TaskEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ValidationOutcome string

const (
	ValidationAccepted ValidationOutcome = "accepted"
	ValidationRejected ValidationOutcome = "rejected"
)

// ValidationState is derived on every submit attempt.
type ValidationState struct {
	Outcome ValidationOutcome `json:"outcome"`
	Message string            `json:"message,omitempty"`
}

func (v ValidationState) Accepted() bool {
	return v.Outcome == ValidationAccepted
}

// StatusView is the observable state of the error area.
type StatusView struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

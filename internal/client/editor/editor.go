// Package editor drives the create/edit/delete workflow for a single task,
// the terminal analogue of the dashboard's modal dialog.
package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/viremo/viremo-be/internal/models"
)

// ErrValidation is returned by Confirm when the title or description is
// empty after trimming. The editor stays open and no backend call is made.
var ErrValidation = errors.New("title and description must both be filled in")

// ErrNotArmed is returned by ConfirmDelete when no delete was requested
// first. Deletion always takes the two-step request/confirm path.
var ErrNotArmed = errors.New("no delete pending confirmation")

// State is the editor's modal state.
type State int

const (
	Closed State = iota
	Creating
	Editing
)

// Backend is the task mutation surface the editor dispatches to.
type Backend interface {
	CreateTask(ctx context.Context, title, description string) error
	UpdateTask(ctx context.Context, id, title, description string) error
	DeleteTask(ctx context.Context, id string) error
}

// Editor holds the transient fields of the open dialog. Only one task can be
// open at a time; opening another discards unsent edits without confirmation.
type Editor struct {
	backend Backend

	state       State
	taskID      string
	title       string
	description string

	pendingDelete string
}

// New creates a closed editor over the given backend.
func New(backend Backend) *Editor {
	return &Editor{backend: backend}
}

// State returns the current modal state.
func (e *Editor) State() State { return e.state }

// Title returns the transient title field.
func (e *Editor) Title() string { return e.title }

// Description returns the transient description field.
func (e *Editor) Description() string { return e.description }

// OpenCreate opens an empty dialog for a new task.
func (e *Editor) OpenCreate() {
	e.state = Creating
	e.taskID = ""
	e.title = ""
	e.description = ""
}

// OpenEdit opens the dialog pre-populated with an existing task. Any unsent
// edits from a previously open dialog are discarded.
func (e *Editor) OpenEdit(task models.Task) {
	e.state = Editing
	e.taskID = task.ID
	e.title = task.Title
	e.description = task.Description
}

// SetTitle updates the transient title field.
func (e *Editor) SetTitle(title string) { e.title = title }

// SetDescription updates the transient description field.
func (e *Editor) SetDescription(description string) { e.description = description }

// Confirm validates the fields and dispatches Create or Update. On a
// validation failure the editor stays open and nothing is sent. On dispatch
// the editor closes immediately; the backend's answer only determines the
// returned error, the caller re-lists to see the result either way.
func (e *Editor) Confirm(ctx context.Context) error {
	if e.state == Closed {
		return nil
	}

	title := strings.TrimSpace(e.title)
	description := strings.TrimSpace(e.description)
	if title == "" || description == "" {
		return ErrValidation
	}

	var err error
	if e.state == Editing {
		err = e.backend.UpdateTask(ctx, e.taskID, title, description)
	} else {
		err = e.backend.CreateTask(ctx, title, description)
	}
	e.reset()
	return err
}

// Cancel discards all transient fields and closes the dialog. No backend call.
func (e *Editor) Cancel() {
	e.reset()
}

// RequestDelete arms a delete for the given task id. Nothing is dispatched
// until ConfirmDelete.
func (e *Editor) RequestDelete(id string) {
	e.pendingDelete = id
}

// PendingDelete returns the armed task id, or "".
func (e *Editor) PendingDelete() string { return e.pendingDelete }

// ConfirmDelete dispatches the armed delete. Irreversible once dispatched.
func (e *Editor) ConfirmDelete(ctx context.Context) error {
	if e.pendingDelete == "" {
		return ErrNotArmed
	}
	id := e.pendingDelete
	e.pendingDelete = ""
	return e.backend.DeleteTask(ctx, id)
}

// CancelDelete disarms a requested delete.
func (e *Editor) CancelDelete() {
	e.pendingDelete = ""
}

func (e *Editor) reset() {
	e.state = Closed
	e.taskID = ""
	e.title = ""
	e.description = ""
}

package notification

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidKind is returned by Render when the event is not one of the
// recognised kinds. It signals a programming error in the caller, never
// user input, and is raised before anything is persisted.
var ErrInvalidKind = errors.New("invalid notification kind")

// Record is a persisted notification as returned by the store.
type Record struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Item is a notification annotated with one recipient's seen flag,
// as delivered in the SSE backlog frame.
type Item struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Seen        bool      `json:"seen"`
}

// Event is the closed set of notification kinds. Each variant carries exactly
// the fields its message needs; the unexported method seals the set so the
// compiler guarantees every kind has a rendering.
type Event interface {
	message() (title, description string)
}

type AddedToProject struct {
	ProjectName string
}

type KickedFromProject struct {
	ProjectName string
}

type MemberQuit struct {
	ProjectName string
	MemberName  string
}

type ProjectRenamed struct {
	OldName string
	NewName string
}

type ProjectDeleted struct {
	ProjectName string
}

type AssignedToTask struct {
	ProjectName string
	TaskName    string
	By          string
}

type TaskRenamed struct {
	ProjectName string
	OldName     string
	NewName     string
}

type TaskDeleted struct {
	ProjectName string
	TaskName    string
	By          string
}

type TaskStatusChanged struct {
	ProjectName string
	TaskName    string
	By          string
	UpdatedData string
}

type TaskDueDateChanged struct {
	ProjectName string
	TaskName    string
	By          string
	UpdatedData string
}

func (e AddedToProject) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("You have been added to project %s", e.ProjectName)
}

func (e KickedFromProject) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("You have been removed from project %s", e.ProjectName)
}

func (e MemberQuit) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("%s has quit or left your project %s", e.MemberName, e.ProjectName)
}

func (e ProjectRenamed) message() (string, string) {
	// Title carries the new name; the old one no longer identifies the project.
	return e.NewName, fmt.Sprintf("Project %s has been renamed to %s", e.OldName, e.NewName)
}

func (e ProjectDeleted) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("Project %s has been deleted by the owner", e.ProjectName)
}

func (e AssignedToTask) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("You have been assigned to task %s by %s", e.TaskName, e.By)
}

func (e TaskRenamed) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("Task %s has been renamed to %s", e.OldName, e.NewName)
}

func (e TaskDeleted) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("Task %s has been deleted by %s", e.TaskName, e.By)
}

func (e TaskStatusChanged) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("Task %s has been marked as %s by %s", e.TaskName, e.UpdatedData, e.By)
}

func (e TaskDueDateChanged) message() (string, string) {
	return e.ProjectName, fmt.Sprintf("Task %s due date has been changed to %s by %s", e.TaskName, e.UpdatedData, e.By)
}

// Render produces the (title, description) pair for an event.
// A nil event has no kind and fails with ErrInvalidKind.
func Render(ev Event) (title, description string, err error) {
	if ev == nil {
		return "", "", fmt.Errorf("%w: <nil>", ErrInvalidKind)
	}
	title, description = ev.message()
	return title, description, nil
}

// Recipients deduplicates recipient IDs, preserving first-seen order.
func Recipients(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

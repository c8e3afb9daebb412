package task

import (
	"context"

	"github.com/google/uuid"

	domaintask "github.com/avelar/taskhub/internal/domain/task"
)

// Repository manages task persistence and assignment.
type Repository interface {
	// Create inserts the task and the creator's assignee row in one transaction.
	Create(ctx context.Context, t domaintask.Task, creatorID uuid.UUID) (domaintask.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error)
	Update(ctx context.Context, t domaintask.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domaintask.Task, error)
	// ListAssignedToUser returns the user's tasks in a project, soonest due first.
	ListAssignedToUser(ctx context.Context, projectID, userID uuid.UUID) ([]domaintask.Task, error)

	IsAssignee(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
	AssigneeIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error)
	ListAssignees(ctx context.Context, taskID uuid.UUID) ([]domaintask.Assignee, error)
	// AvailableAssignees returns project members not yet assigned to the task.
	AvailableAssignees(ctx context.Context, taskID uuid.UUID) ([]domaintask.Assignee, error)
	AddAssignee(ctx context.Context, taskID, userID, projectID uuid.UUID) error
	RemoveAssignee(ctx context.Context, taskID, userID uuid.UUID) error
}

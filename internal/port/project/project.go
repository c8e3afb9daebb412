package project

import (
	"context"

	"github.com/google/uuid"

	domainproject "github.com/avelar/taskhub/internal/domain/project"
)

// Repository manages project persistence and membership.
type Repository interface {
	// Create inserts the project and its owner's membership row in one transaction.
	Create(ctx context.Context, p domainproject.Project) (domainproject.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListForUser returns team projects the user belongs to and personal
	// projects the user owns, annotated with favorite/archive flags.
	ListForUser(ctx context.Context, userID uuid.UUID) (team, personal []domainproject.Summary, err error)

	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, projectID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
	MemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	ListMembers(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domainproject.MemberProfile, error)
	CountMembers(ctx context.Context, projectID uuid.UUID) (int, error)

	// ToggleFavorite flips the user's favorite flag and reports the new state.
	ToggleFavorite(ctx context.Context, projectID, userID uuid.UUID) (favorite bool, err error)
	// ToggleArchive flips the user's archive flag and reports the new state.
	ToggleArchive(ctx context.Context, projectID, userID uuid.UUID) (archived bool, err error)
}

package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no project or membership
// matches the lookup.
var ErrNotFound = errors.New("project not found")

type Project struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Team      bool      `json:"is_team_project"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func New(name string, team bool, ownerID uuid.UUID) Project {
	return Project{
		ID:        uuid.New(),
		Name:      name,
		Team:      team,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
}

// MemberProfile is the member shape returned by list endpoints.
type MemberProfile struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar,omitempty"`
}

// Summary is a project annotated with the requesting user's favorite/archive flags.
type Summary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsFavorite bool      `json:"is_favorite"`
	IsArchived bool      `json:"is_archived"`
}

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainproject "github.com/avelar/taskhub/internal/domain/project"
	domainuser "github.com/avelar/taskhub/internal/domain/user"
	portproject "github.com/avelar/taskhub/internal/port/project"
	portuser "github.com/avelar/taskhub/internal/port/user"
)

var ErrEmailTaken = errors.New("email already taken")

// Profile bundles the user with their project lists.
type Profile struct {
	User             domainuser.User         `json:"user"`
	TeamProjects     []domainproject.Summary `json:"team_projects"`
	PersonalProjects []domainproject.Summary `json:"personal_projects"`
}

// ProfileUpdate carries optional profile fields. Nil means "leave unchanged".
type ProfileUpdate struct {
	Name         *string
	Email        *string
	Avatar       *string
	DeleteAvatar bool
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Avatar == nil && !u.DeleteAvatar
}

type Service struct {
	users    portuser.Repository
	projects portproject.Repository
}

func NewService(users portuser.Repository, projects portproject.Repository) *Service {
	return &Service{users: users, projects: projects}
}

func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("get user: %w", err)
	}

	team, personal, err := s.projects.ListForUser(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("list projects: %w", err)
	}
	if team == nil {
		team = []domainproject.Summary{}
	}
	if personal == nil {
		personal = []domainproject.Summary{}
	}
	return Profile{User: u, TeamProjects: team, PersonalProjects: personal}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != u.Email {
		_, err := s.users.GetByEmail(ctx, *upd.Email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, domainuser.ErrNotFound) {
			return fmt.Errorf("check email: %w", err)
		}
		u.Email = *upd.Email
	}
	if upd.DeleteAvatar {
		u.Avatar = ""
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}

	if err := s.users.UpdateProfile(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

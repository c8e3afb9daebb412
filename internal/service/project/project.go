package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
	domainproject "github.com/avelar/taskhub/internal/domain/project"
	domaintask "github.com/avelar/taskhub/internal/domain/task"
	portnotifier "github.com/avelar/taskhub/internal/port/notifier"
	portproject "github.com/avelar/taskhub/internal/port/project"
	porttask "github.com/avelar/taskhub/internal/port/task"
	portuser "github.com/avelar/taskhub/internal/port/user"
)

var ErrAlreadyMember = errors.New("user is already a member of this project")

// memberPreview is how many members the detail endpoint embeds.
const memberPreview = 4

// Detail is the project page payload for one requesting user.
type Detail struct {
	Project      domainproject.Project         `json:"project"`
	Members      []domainproject.MemberProfile `json:"members"`
	TotalMembers int                           `json:"total_members"`
	Tasks        []domaintask.Task             `json:"tasks"`
}

type Service struct {
	repo       portproject.Repository
	users      portuser.Repository
	tasks      porttask.Repository
	dispatcher portnotifier.Dispatcher
}

func NewService(repo portproject.Repository, users portuser.Repository, tasks porttask.Repository, dispatcher portnotifier.Dispatcher) *Service {
	return &Service{repo: repo, users: users, tasks: tasks, dispatcher: dispatcher}
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, name string, team bool) (domainproject.Project, error) {
	created, err := s.repo.Create(ctx, domainproject.New(name, team, ownerID))
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// Detail returns the project with a member preview and the requesting user's
// tasks, soonest due first.
func (s *Service) Detail(ctx context.Context, projectID, userID uuid.UUID) (Detail, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return Detail{}, fmt.Errorf("get project: %w", err)
	}

	members, err := s.repo.ListMembers(ctx, projectID, 0, memberPreview)
	if err != nil {
		return Detail{}, fmt.Errorf("list members: %w", err)
	}
	total, err := s.repo.CountMembers(ctx, projectID)
	if err != nil {
		return Detail{}, fmt.Errorf("count members: %w", err)
	}
	tasks, err := s.tasks.ListAssignedToUser(ctx, projectID, userID)
	if err != nil {
		return Detail{}, fmt.Errorf("list tasks: %w", err)
	}
	return Detail{Project: p, Members: members, TotalMembers: total, Tasks: tasks}, nil
}

// Rename updates the project name and notifies every other member.
func (s *Service) Rename(ctx context.Context, projectID, actorID uuid.UUID, name string) error {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}
	if err := s.repo.Rename(ctx, projectID, name); err != nil {
		return fmt.Errorf("rename project: %w", err)
	}

	recipients, err := s.membersExcept(ctx, projectID, actorID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load rename recipients", "project_id", projectID, "error", err)
		return nil
	}
	if err := s.dispatcher.Dispatch(ctx, recipients, domainnotif.ProjectRenamed{OldName: p.Name, NewName: name}); err != nil {
		slog.ErrorContext(ctx, "failed to dispatch project rename notification", "project_id", projectID, "error", err)
	}
	return nil
}

// DeleteOrQuit removes the project when the caller owns it, otherwise removes
// the caller's membership. It reports which of the two happened.
func (s *Service) DeleteOrQuit(ctx context.Context, projectID, userID uuid.UUID) (deleted bool, name string, err error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return false, "", fmt.Errorf("get project: %w", err)
	}

	if p.OwnerID == userID {
		recipients, err := s.membersExcept(ctx, projectID, userID)
		if err != nil {
			return false, "", fmt.Errorf("list members: %w", err)
		}
		if err := s.repo.Delete(ctx, projectID); err != nil {
			return false, "", fmt.Errorf("delete project: %w", err)
		}
		if err := s.dispatcher.Dispatch(ctx, recipients, domainnotif.ProjectDeleted{ProjectName: p.Name}); err != nil {
			slog.ErrorContext(ctx, "failed to dispatch project delete notification", "project_id", projectID, "error", err)
		}
		return true, p.Name, nil
	}

	if err := s.repo.RemoveMember(ctx, projectID, userID); err != nil {
		return false, "", fmt.Errorf("quit project: %w", err)
	}

	u, err := s.users.GetByID(ctx, userID)
	memberName := userID.String()
	if err == nil {
		memberName = u.Name
	}
	recipients, err := s.repo.MemberIDs(ctx, projectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load quit recipients", "project_id", projectID, "error", err)
		return false, p.Name, nil
	}
	if err := s.dispatcher.Dispatch(ctx, recipients, domainnotif.MemberQuit{ProjectName: p.Name, MemberName: memberName}); err != nil {
		slog.ErrorContext(ctx, "failed to dispatch member quit notification", "project_id", projectID, "error", err)
	}
	return false, p.Name, nil
}

func (s *Service) Members(ctx context.Context, projectID uuid.UUID, page, limit int) ([]domainproject.MemberProfile, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	members, err := s.repo.ListMembers(ctx, projectID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	total, err := s.repo.CountMembers(ctx, projectID)
	if err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}
	return members, total, nil
}

// AddMember adds the user with the given email and notifies them.
func (s *Service) AddMember(ctx context.Context, projectID uuid.UUID, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	member, err := s.repo.IsMember(ctx, projectID, u.ID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if member {
		return ErrAlreadyMember
	}

	if err := s.repo.AddMember(ctx, projectID, u.ID); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load project for add-member notification", "project_id", projectID, "error", err)
		return nil
	}
	if err := s.dispatcher.Dispatch(ctx, []uuid.UUID{u.ID}, domainnotif.AddedToProject{ProjectName: p.Name}); err != nil {
		slog.ErrorContext(ctx, "failed to dispatch add-member notification", "project_id", projectID, "error", err)
	}
	return nil
}

// RemoveMember removes the membership and notifies the removed user.
func (s *Service) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	if err := s.repo.RemoveMember(ctx, projectID, userID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load project for remove-member notification", "project_id", projectID, "error", err)
		return nil
	}
	if err := s.dispatcher.Dispatch(ctx, []uuid.UUID{userID}, domainnotif.KickedFromProject{ProjectName: p.Name}); err != nil {
		slog.ErrorContext(ctx, "failed to dispatch remove-member notification", "project_id", projectID, "error", err)
	}
	return nil
}

func (s *Service) ToggleFavorite(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	fav, err := s.repo.ToggleFavorite(ctx, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return fav, nil
}

func (s *Service) ToggleArchive(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	archived, err := s.repo.ToggleArchive(ctx, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("toggle archive: %w", err)
	}
	return archived, nil
}

// IsMember reports whether the user belongs to the project. Used by the
// authorization middleware.
func (s *Service) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	return s.repo.IsMember(ctx, projectID, userID)
}

// IsOwner reports whether the user owns the project.
func (s *Service) IsOwner(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domainproject.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.OwnerID == userID, nil
}

func (s *Service) membersExcept(ctx context.Context, projectID, exclude uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.repo.MemberIDs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := ids[:0]
	for _, id := range ids {
		if id != exclude {
			out = append(out, id)
		}
	}
	return out, nil
}

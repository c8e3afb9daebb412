package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Templates(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "added to project",
			event:     AddedToProject{ProjectName: "Apollo"},
			wantTitle: "Apollo",
			wantDesc:  "You have been added to project Apollo",
		},
		{
			name:      "kicked from project",
			event:     KickedFromProject{ProjectName: "Apollo"},
			wantTitle: "Apollo",
			wantDesc:  "You have been removed from project Apollo",
		},
		{
			name:      "member quit",
			event:     MemberQuit{ProjectName: "Apollo", MemberName: "Dana"},
			wantTitle: "Apollo",
			wantDesc:  "Dana has quit or left your project Apollo",
		},
		{
			name:      "project renamed uses new name as title",
			event:     ProjectRenamed{OldName: "Apollo", NewName: "Artemis"},
			wantTitle: "Artemis",
			wantDesc:  "Project Apollo has been renamed to Artemis",
		},
		{
			name:      "project deleted",
			event:     ProjectDeleted{ProjectName: "Apollo"},
			wantTitle: "Apollo",
			wantDesc:  "Project Apollo has been deleted by the owner",
		},
		{
			name:      "assigned to task",
			event:     AssignedToTask{ProjectName: "Apollo", TaskName: "Write docs", By: "Dana"},
			wantTitle: "Apollo",
			wantDesc:  "You have been assigned to task Write docs by Dana",
		},
		{
			name:      "task renamed",
			event:     TaskRenamed{ProjectName: "P", OldName: "Old", NewName: "New"},
			wantTitle: "P",
			wantDesc:  "Task Old has been renamed to New",
		},
		{
			name:      "task deleted",
			event:     TaskDeleted{ProjectName: "P", TaskName: "Write docs", By: "Dana"},
			wantTitle: "P",
			wantDesc:  "Task Write docs has been deleted by Dana",
		},
		{
			name:      "task status changed",
			event:     TaskStatusChanged{ProjectName: "P", TaskName: "Write docs", By: "Dana", UpdatedData: "COMPLETED"},
			wantTitle: "P",
			wantDesc:  "Task Write docs has been marked as COMPLETED by Dana",
		},
		{
			name:      "task due date changed",
			event:     TaskDueDateChanged{ProjectName: "P", TaskName: "Write docs", By: "Dana", UpdatedData: "02 Mar 2026"},
			wantTitle: "P",
			wantDesc:  "Task Write docs due date has been changed to 02 Mar 2026 by Dana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, desc, err := Render(tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestRender_NilEvent(t *testing.T) {
	_, _, err := Render(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestRecipients_Deduplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := Recipients([]uuid.UUID{a, b, a, a, b})
	assert.Equal(t, []uuid.UUID{a, b}, got)
}

func TestRecipients_Empty(t *testing.T) {
	assert.Empty(t, Recipients(nil))
}

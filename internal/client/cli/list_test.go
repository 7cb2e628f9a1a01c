package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lansync/internal/client/storage"
	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/pkg/api"
)

func TestRunList(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)

	require.NoError(t, st.SaveRecord(ctx, storage.KindConversation, models.Record(
		`{"id":"c1","updatedAt":"2024-01-01T00:00:00.000Z","title":"Trip planning","messages":[{"id":"m1"},{"id":"m2"}]}`)))
	require.NoError(t, st.SaveRecord(ctx, storage.KindConversation, models.Record(
		`{"id":"c2","updatedAt":"2024-01-02T00:00:00.000Z","messages":[]}`)))
	require.NoError(t, st.SaveRecord(ctx, storage.KindProject, models.Record(
		`{"id":"p1","updatedAt":"2024-01-03T00:00:00.000Z","name":"Work"}`)))

	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:     "all by default",
			args:     nil,
			contains: []string{"=== Conversations ===", "=== Projects ===", "1. Trip planning", "2. (untitled)", "1. Work"},
		},
		{
			name:        "conversations",
			args:        []string{"conversations"},
			contains:    []string{"ID:      c1", "Messages: 2", "Updated: 2024-01-02T00:00:00.000Z"},
			notContains: []string{"=== Projects ==="},
		},
		{
			name:        "project alias",
			args:        []string{"project"},
			contains:    []string{"1. Work", "ID:      p1"},
			notContains: []string{"=== Conversations ===", "Messages:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			c := New(newMockIO(out, ""), nil, nil, st, st, nil)

			require.NoError(t, c.Run(ctx, "list", tt.args))
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestRunList_Empty(t *testing.T) {
	out := &output{}
	st := setupStorage(t)
	c := New(newMockIO(out, ""), nil, nil, st, st, nil)

	require.NoError(t, c.Run(context.Background(), "list", []string{"projects"}))
	assert.Contains(t, out.String(), "No records found.")
}

func TestRunList_UnknownType(t *testing.T) {
	st := setupStorage(t)
	c := New(newMockIO(&output{}, ""), nil, nil, st, st, nil)

	err := c.Run(context.Background(), "list", []string{"folders"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record type: folders")
}

func TestRunStatus(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	require.NoError(t, st.SaveRecord(ctx, storage.KindConversation, models.Record(`{"id":"c1","updatedAt":"2024-01-01T00:00:00.000Z"}`)))
	require.NoError(t, st.SaveLastSyncedAt(ctx, "2024-06-01T12:00:00.000Z"))
	nodeID, err := st.NodeID(ctx)
	require.NoError(t, err)

	out := &output{}
	server := newServerMock(&api.StatusResponse{
		ServerName:        "Desk",
		Version:           api.ProtocolVersion,
		ConversationCount: 4,
		ProjectCount:      2,
		HasPin:            true,
	}, nil)
	c := New(newMockIO(out, ""), server, nil, st, st, nil)

	require.NoError(t, c.Run(ctx, "status", nil))

	text := out.String()
	assert.Contains(t, text, "Name:     Desk")
	assert.Contains(t, text, "Protocol: v1")
	assert.Contains(t, text, "Records:  4 conversation(s), 2 project(s)")
	assert.Contains(t, text, "PIN:      required")
	assert.Contains(t, text, "Node ID:       "+nodeID)
	assert.Contains(t, text, "Conversations: 1")
	assert.Contains(t, text, "Projects:      0")
	assert.Contains(t, text, "Last synced:   2024-06-01T12:00:00.000Z")
}

func TestRunStatus_ServerUnreachable(t *testing.T) {
	st := setupStorage(t)
	out := &output{}
	server := newServerMock(nil, assert.AnError)
	c := New(newMockIO(out, ""), server, nil, st, st, nil)

	require.NoError(t, c.Run(context.Background(), "status", nil))
	assert.Contains(t, out.String(), "Status:   unreachable")
	assert.Contains(t, out.String(), "Last synced:   never")
}

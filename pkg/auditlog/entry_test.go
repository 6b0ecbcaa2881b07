package auditlog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-auditlog/pkg/discord"
)

func intPtr(n int) *int { return &n }

func TestNewEntryRejectsMissingActionType(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{ID: 1}, log)

	assert.Nil(t, entry)
	assert.Nil(t, NewEntry(nil, log))
}

func TestNewEntryTargetIDZeroSentinel(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{ID: 1, ActionType: intPtr(11)}, log)

	require.NotNil(t, entry)
	assert.Equal(t, discord.Snowflake(0), entry.TargetID)
	assert.Nil(t, entry.Target())
}

func TestNewEntryResolvesUserFromParent(t *testing.T) {
	log := New(nil)
	actor := &discord.User{ID: 7, Username: "mod"}
	log.Users[7] = actor

	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(20), UserID: 7,
	}, log)

	require.NotNil(t, entry)
	assert.Same(t, actor, entry.User)

	// Unknown actor id resolves to nil, never raises.
	entry = NewEntry(&discord.AuditLogEntryData{
		ID: 2, ActionType: intPtr(20), UserID: 8,
	}, log)
	require.NotNil(t, entry)
	assert.Nil(t, entry.User)
}

func TestNewEntrySkipsChangesWithoutKey(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(11),
		Changes: []discord.AuditLogChangeData{
			{OldValue: json.RawMessage(`"a"`), NewValue: json.RawMessage(`"b"`)},
		},
	}, log)

	require.NotNil(t, entry)
	assert.Nil(t, entry.Changes)
}

func TestNewEntryUnknownKeyPassesThrough(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(11),
		Changes: []discord.AuditLogChangeData{
			{Key: "totally_new_field", OldValue: json.RawMessage(`"a"`), NewValue: json.RawMessage(`"b"`)},
		},
	}, log)

	require.NotNil(t, entry)
	require.Len(t, entry.Changes, 1)
	assert.Equal(t, "totally_new_field", entry.Changes[0].AttributeName)
	assert.Equal(t, "a", entry.Changes[0].Before)
	assert.Equal(t, "b", entry.Changes[0].After)
}

func TestNewEntryDropsAmbiguousKeyOnUnknownEvent(t *testing.T) {
	log := New(nil)

	// Event 999 is unknown, so its target type is the catch-all with the
	// merged table. "type" diverges across target types and was excluded
	// from the merge; decoding must drop it, not guess.
	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(999),
		Changes: []discord.AuditLogChangeData{
			{Key: "type", OldValue: json.RawMessage(`0`), NewValue: json.RawMessage(`5`)},
			{Key: "name", OldValue: json.RawMessage(`"a"`), NewValue: json.RawMessage(`"b"`)},
		},
	}, log)

	require.NotNil(t, entry)
	require.Len(t, entry.Changes, 1)
	assert.Equal(t, "name", entry.Changes[0].AttributeName)
}

func TestNewEntryFallsBackToMergedTable(t *testing.T) {
	log := New(nil)

	// "topic" is not in the guild table but survives the merge; a guild
	// update carrying it still decodes through the fallback.
	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(1),
		Changes: []discord.AuditLogChangeData{
			{Key: "topic", OldValue: json.RawMessage(`"old"`), NewValue: json.RawMessage(`"new"`)},
		},
	}, log)

	require.NotNil(t, entry)
	require.Len(t, entry.Changes, 1)
	assert.Equal(t, "topic", entry.Changes[0].AttributeName)
	assert.Equal(t, "old", entry.Changes[0].Before)
}

func TestNewEntryDroppedChangesCollapseToNil(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(91),
		Changes: []discord.AuditLogChangeData{
			{Key: "asset", OldValue: json.RawMessage(`"x"`)},
		},
	}, log)

	require.NotNil(t, entry)
	assert.Nil(t, entry.Changes)
}

func TestNewEntryDetails(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(72),
		Options: map[string]json.RawMessage{
			"channel_id": json.RawMessage(`"42"`),
			"count":      json.RawMessage(`"3"`),
			"novel":      json.RawMessage(`"kept"`),
		},
	}, log)

	require.NotNil(t, entry)
	assert.Equal(t, discord.Snowflake(42), entry.Details["channel_id"])
	assert.Equal(t, int64(3), entry.Details["count"])
	assert.Equal(t, "kept", entry.Details["novel"])
}

func TestNewEntryEmptyDetailsCollapseToNil(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 1, ActionType: intPtr(72),
		Options: map[string]json.RawMessage{
			"channel_id": json.RawMessage(`null`),
		},
	}, log)

	require.NotNil(t, entry)
	assert.Nil(t, entry.Details)
}

func TestEntryCreatedAt(t *testing.T) {
	log := New(nil)

	entry := NewEntry(&discord.AuditLogEntryData{
		ID: 175928847299117063, ActionType: intPtr(1),
	}, log)

	require.NotNil(t, entry)
	assert.Equal(t, int64(1462015105796), entry.CreatedAt().UnixMilli())
}

func TestPassthroughForMemoizes(t *testing.T) {
	first := passthroughFor("some_unknown_key")
	second := passthroughFor("some_unknown_key")

	assert.Same(t, first, second)
}

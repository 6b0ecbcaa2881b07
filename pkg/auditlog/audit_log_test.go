package auditlog

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-auditlog/pkg/discord"
)

func channelUpdatePage(t *testing.T) *discord.AuditLogPage {
	t.Helper()

	var page discord.AuditLogPage
	err := json.Unmarshal([]byte(`{
		"audit_log_entries": [
			{
				"id": "1",
				"action_type": 11,
				"target_id": "55",
				"changes": [
					{"key": "name", "old_value": "a", "new_value": "b"}
				]
			}
		],
		"users": [],
		"webhook": [],
		"integrations": [],
		"threads": [],
		"guild_scheduled_events": []
	}`), &page)
	require.NoError(t, err)
	return &page
}

func TestPopulateEndToEnd(t *testing.T) {
	log := New(nil)

	require.True(t, log.Populate(channelUpdatePage(t)))

	require.Equal(t, 1, log.Len())
	entry := log.At(0)
	assert.Equal(t, "channel update", entry.Type.Name)
	assert.Equal(t, discord.Snowflake(55), entry.TargetID)
	require.Len(t, entry.Changes, 1)
	assert.Equal(t, "name", entry.Changes[0].AttributeName)
	assert.Equal(t, "a", entry.Changes[0].Before)
	assert.Equal(t, "b", entry.Changes[0].After)
	assert.Same(t, log, entry.Parent())
}

func TestPopulateIsRepeatable(t *testing.T) {
	log := New(nil)

	require.True(t, log.Populate(channelUpdatePage(t)))
	require.True(t, log.Populate(channelUpdatePage(t)))
	assert.Equal(t, 2, log.Len())

	// An empty page reports exhaustion and leaves entries untouched.
	empty := &discord.AuditLogPage{}
	assert.False(t, log.Populate(empty))
	assert.Equal(t, 2, log.Len())
}

func TestPopulateMergesSideTables(t *testing.T) {
	log := New(nil)

	first := &discord.AuditLogPage{
		Users:    []discord.User{{ID: 1, Username: "one"}},
		Webhooks: []discord.Webhook{{ID: 10, Name: "hook"}},
	}
	assert.False(t, log.Populate(first))

	// Side-table writes stick even when the page had no entries.
	assert.Len(t, log.Users, 1)
	assert.Len(t, log.Webhooks, 1)

	second := &discord.AuditLogPage{
		Users: []discord.User{{ID: 1, Username: "renamed"}, {ID: 2, Username: "two"}},
	}
	assert.False(t, log.Populate(second))

	// Later pages win on a shared id, and tables only grow.
	assert.Len(t, log.Users, 2)
	assert.Equal(t, "renamed", log.Users[1].Username)
}

func TestPopulateSkipsMalformedEntries(t *testing.T) {
	log := New(nil)

	page := &discord.AuditLogPage{
		AuditLogEntries: []discord.AuditLogEntryData{
			{ID: 1}, // no action_type
			{ID: 2, ActionType: intPtr(22)},
		},
	}

	require.True(t, log.Populate(page))
	require.Equal(t, 1, log.Len())
	assert.Equal(t, discord.Snowflake(2), log.At(0).ID)
}

func TestSequenceAccess(t *testing.T) {
	log := New(nil)
	page := &discord.AuditLogPage{
		AuditLogEntries: []discord.AuditLogEntryData{
			{ID: 3, ActionType: intPtr(1)},
			{ID: 2, ActionType: intPtr(1)},
			{ID: 1, ActionType: intPtr(1)},
		},
	}
	require.True(t, log.Populate(page))

	var forward []discord.Snowflake
	for entry := range log.All() {
		forward = append(forward, entry.ID)
	}
	assert.Equal(t, []discord.Snowflake{3, 2, 1}, forward)

	var backward []discord.Snowflake
	for entry := range log.Backward() {
		backward = append(backward, entry.ID)
	}
	assert.Equal(t, []discord.Snowflake{1, 2, 3}, backward)
}

// orphanEntry builds an entry whose parent log goes out of scope when the
// function returns.
func orphanEntry(t *testing.T) *AuditLogEntry {
	t.Helper()

	log := New(nil)
	require.True(t, log.Populate(channelUpdatePage(t)))
	return log.At(0)
}

func TestOrphanedEntryResolvesToNil(t *testing.T) {
	entry := orphanEntry(t)

	runtime.GC()
	runtime.GC()

	assert.Nil(t, entry.Parent())
	assert.Nil(t, entry.Target())
}

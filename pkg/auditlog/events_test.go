package auditlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventGetKnown(t *testing.T) {
	event := EventGet(11)

	assert.Same(t, EventChannelUpdate, event)
	assert.Equal(t, "channel update", event.Name)
	assert.Same(t, TargetTypeChannel, event.TargetType)
}

func TestEventGetUnknownSynthesizesCachedPlaceholder(t *testing.T) {
	first := EventGet(9999)
	second := EventGet(9999)

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 9999, first.Value)

	// Placeholders get the catch-all target type so best-effort change
	// decoding still runs through the merged table.
	assert.Same(t, TargetTypeAll, first.TargetType)
}

func TestTargetTypeGetUnknownSynthesizesCachedPlaceholder(t *testing.T) {
	first := TargetTypeGet(8888)
	second := TargetTypeGet(8888)

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Empty(t, first.ChangeConverters)
	assert.Nil(t, first.TargetConverter(nil))
}

func TestEventsShareTargetTypes(t *testing.T) {
	assert.Same(t, EventChannelOverwriteCreate.TargetType, EventChannelOverwriteUpdate.TargetType)
	assert.Same(t, EventChannelOverwriteCreate.TargetType, EventChannelOverwriteDelete.TargetType)
}

func TestIsDelete(t *testing.T) {
	assert.True(t, EventInviteDelete.IsDelete())
	assert.True(t, EventChannelDelete.IsDelete())
	assert.False(t, EventInviteCreate.IsDelete())
	assert.False(t, EventGuildUpdate.IsDelete())
}

func TestAllTargetTypeCoversEveryTable(t *testing.T) {
	// Spot-check that the catch-all table carries unambiguous keys from
	// several different target types.
	table := TargetTypeAll.ChangeConverters
	assert.Contains(t, table, "name")
	assert.Contains(t, table, "permissions")
	assert.Contains(t, table, "code")
	assert.Contains(t, table, "tags")
	assert.Contains(t, table, "trigger_metadata")
}

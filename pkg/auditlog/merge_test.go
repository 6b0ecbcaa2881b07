package auditlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConvertersKeepsSharedInstance(t *testing.T) {
	shared := asString("name")

	merged := MergeConverters(
		ChangeConverterTable{"name": shared},
		ChangeConverterTable{"name": shared},
	)

	require.Contains(t, merged, "name")
	assert.Same(t, shared, merged["name"])
}

func TestMergeConvertersExcludesConflictingKey(t *testing.T) {
	first := asString("type")
	second := asInt("type")

	merged := MergeConverters(
		ChangeConverterTable{"type": first},
		ChangeConverterTable{"type": second},
	)

	assert.NotContains(t, merged, "type")
}

func TestMergeConvertersExclusionIsPermanent(t *testing.T) {
	first := asString("type")
	second := asInt("type")

	// A third table repeating the first converter must not reintroduce
	// the key once it went ambiguous.
	merged := MergeConverters(
		ChangeConverterTable{"type": first},
		ChangeConverterTable{"type": second},
		ChangeConverterTable{"type": first},
	)

	assert.NotContains(t, merged, "type")
}

func TestMergeConvertersUnionsDisjointKeys(t *testing.T) {
	name := asString("name")
	topic := asString("topic")

	merged := MergeConverters(
		ChangeConverterTable{"name": name},
		ChangeConverterTable{"topic": topic},
	)

	assert.Len(t, merged, 2)
	assert.Same(t, name, merged["name"])
	assert.Same(t, topic, merged["topic"])
}

func TestGlobalMergedTable(t *testing.T) {
	// Keys shared with one meaning survive the merge.
	assert.Contains(t, mergedConverters, "name")
	assert.Contains(t, mergedConverters, "channel_id")
	assert.Contains(t, mergedConverters, "rate_limit_per_user")

	// Keys with per-target-type semantics are excluded and tracked.
	assert.NotContains(t, mergedConverters, "type")
	assert.NotContains(t, mergedConverters, "flags")
	assert.Contains(t, ambiguousKeys, "type")
	assert.Contains(t, ambiguousKeys, "flags")
}

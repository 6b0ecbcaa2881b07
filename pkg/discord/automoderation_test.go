package discord

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAutoModerationTriggerMeta(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AutoModerationTriggerMeta
	}{
		{
			"keyword filter",
			`{"keyword_filter":["bad","worse"],"allow_list":["ok"]}`,
			&KeywordTriggerMeta{KeywordFilter: []string{"bad", "worse"}, AllowList: []string{"ok"}},
		},
		{
			"regex only",
			`{"regex_patterns":["b+ad"]}`,
			&KeywordTriggerMeta{RegexPatterns: []string{"b+ad"}},
		},
		{
			"presets",
			`{"presets":[1,3]}`,
			&KeywordPresetTriggerMeta{Presets: []int{1, 3}},
		},
		{
			"mention spam",
			`{"mention_total_limit":7,"mention_raid_protection_enabled":true}`,
			&MentionSpamTriggerMeta{MentionTotalLimit: 7, RaidProtectionEnabled: true},
		},
		{"unrecognized shape", `{"mystery":1}`, nil},
		{"not an object", `[1,2]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAutoModerationTriggerMeta(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScheduledEventMetadata(t *testing.T) {
	got := ParseScheduledEventMetadata(json.RawMessage(`{"location":"hall b"}`))
	assert.Equal(t, &ScheduledEventLocation{Location: "hall b"}, got)

	assert.Nil(t, ParseScheduledEventMetadata(json.RawMessage(`{}`)))
	assert.Nil(t, ParseScheduledEventMetadata(json.RawMessage(`null`)))
}

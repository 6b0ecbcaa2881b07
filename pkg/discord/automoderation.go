package discord

import "encoding/json"

type AutoModerationRule struct {
	ID             Snowflake                 `json:"id"`
	GuildID        Snowflake                 `json:"guild_id"`
	Name           string                    `json:"name"`
	CreatorID      Snowflake                 `json:"creator_id"`
	EventType      AutoModerationEventType   `json:"event_type"`
	TriggerType    AutoModerationTriggerType `json:"trigger_type"`
	Actions        []AutoModerationAction    `json:"actions"`
	Enabled        bool                      `json:"enabled"`
	ExemptRoles    []Snowflake               `json:"exempt_roles"`
	ExemptChannels []Snowflake               `json:"exempt_channels"`
}

type AutoModerationAction struct {
	Type     AutoModerationActionType  `json:"type"`
	Metadata *AutoModerationActionMeta `json:"metadata,omitempty"`
}

type AutoModerationActionMeta struct {
	ChannelID       Snowflake `json:"channel_id"`
	DurationSeconds int       `json:"duration_seconds"`
	CustomMessage   string    `json:"custom_message"`
}

// AutoModerationTriggerMeta is implemented by the per-trigger-type
// metadata shapes.
type AutoModerationTriggerMeta interface {
	triggerMeta()
}

type KeywordTriggerMeta struct {
	KeywordFilter []string `json:"keyword_filter"`
	RegexPatterns []string `json:"regex_patterns"`
	AllowList     []string `json:"allow_list"`
}

type KeywordPresetTriggerMeta struct {
	Presets   []int    `json:"presets"`
	AllowList []string `json:"allow_list"`
}

type MentionSpamTriggerMeta struct {
	MentionTotalLimit     int  `json:"mention_total_limit"`
	RaidProtectionEnabled bool `json:"mention_raid_protection_enabled"`
}

func (*KeywordTriggerMeta) triggerMeta()       {}
func (*KeywordPresetTriggerMeta) triggerMeta() {}
func (*MentionSpamTriggerMeta) triggerMeta()   {}

// ParseAutoModerationTriggerMeta inspects a raw trigger-metadata
// sub-document's shape to pick the metadata subtype. Keyword filters and
// regex patterns mark a keyword trigger, presets a preset trigger, a
// mention limit a mention-spam trigger. Unrecognized shapes yield nil.
func ParseAutoModerationTriggerMeta(raw json.RawMessage) AutoModerationTriggerMeta {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	if hasAny(probe, "keyword_filter", "regex_patterns") {
		var meta KeywordTriggerMeta
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil
		}
		return &meta
	}
	if hasAny(probe, "presets") {
		var meta KeywordPresetTriggerMeta
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil
		}
		return &meta
	}
	if hasAny(probe, "mention_total_limit") {
		var meta MentionSpamTriggerMeta
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil
		}
		return &meta
	}
	return nil
}

func hasAny(probe map[string]json.RawMessage, keys ...string) bool {
	for _, key := range keys {
		if _, ok := probe[key]; ok {
			return true
		}
	}
	return false
}

package discord

import "encoding/json"

type ScheduledEvent struct {
	ID             Snowflake                `json:"id"`
	GuildID        Snowflake                `json:"guild_id"`
	ChannelID      Snowflake                `json:"channel_id"`
	CreatorID      Snowflake                `json:"creator_id"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description"`
	PrivacyLevel   PrivacyLevel             `json:"privacy_level"`
	Status         ScheduledEventStatus     `json:"status"`
	EntityType     ScheduledEventEntityType `json:"entity_type"`
	EntityID       Snowflake                `json:"entity_id"`
	EntityMetadata *ScheduledEventLocation  `json:"entity_metadata"`
	Image          string                   `json:"image"`
}

// ScheduledEventLocation is the entity metadata of external events. Stage
// and voice events carry no metadata; those decode to nil.
type ScheduledEventLocation struct {
	Location string `json:"location"`
}

// ParseScheduledEventMetadata inspects a raw entity-metadata sub-document
// and picks the matching metadata shape. Unrecognized shapes yield nil.
func ParseScheduledEventMetadata(raw json.RawMessage) *ScheduledEventLocation {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	if _, ok := probe["location"]; !ok {
		return nil
	}
	var loc ScheduledEventLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil
	}
	return &loc
}

type StageInstance struct {
	ID           Snowflake    `json:"id"`
	GuildID      Snowflake    `json:"guild_id"`
	ChannelID    Snowflake    `json:"channel_id"`
	Topic        string       `json:"topic"`
	PrivacyLevel PrivacyLevel `json:"privacy_level"`
}

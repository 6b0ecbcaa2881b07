package discord

import "encoding/json"

// AuditLogPage is one page of the guild audit-log endpoint. Discord keys
// the webhook side-table with the singular "webhook".
type AuditLogPage struct {
	AuditLogEntries []AuditLogEntryData `json:"audit_log_entries"`
	Users           []User              `json:"users"`
	Webhooks        []Webhook           `json:"webhook"`
	Integrations    []Integration       `json:"integrations"`
	Threads         []Channel           `json:"threads"`
	ScheduledEvents []ScheduledEvent    `json:"guild_scheduled_events"`
}

// AuditLogEntryData is the raw wire form of a single entry. ActionType is
// a pointer so that an absent field is distinguishable from zero; entries
// without one are malformed and get skipped.
type AuditLogEntryData struct {
	ID         Snowflake                  `json:"id"`
	ActionType *int                       `json:"action_type"`
	TargetID   Snowflake                  `json:"target_id"`
	UserID     Snowflake                  `json:"user_id"`
	Reason     string                     `json:"reason"`
	Changes    []AuditLogChangeData       `json:"changes"`
	Options    map[string]json.RawMessage `json:"options"`
}

// AuditLogChangeData is one raw before/after pair. Values stay raw until a
// change converter decides their type.
type AuditLogChangeData struct {
	Key      string          `json:"key"`
	OldValue json.RawMessage `json:"old_value"`
	NewValue json.RawMessage `json:"new_value"`
}

package auditlog

import (
	"sync"
	"time"
	"weak"

	"go.uber.org/zap"

	"go-auditlog/internal/logging"
	"go-auditlog/pkg/discord"
)

// AuditLogEntry is one parsed log record. Target resolution is lazy:
// only the target id is stored, and Target dereferences the weak parent
// reference on every call so a stale entry degrades to nil instead of
// pinning the aggregate or raising.
type AuditLogEntry struct {
	ID       discord.Snowflake
	Type     *AuditLogEvent
	TargetID discord.Snowflake
	User     *discord.User
	Reason   string
	Changes  []AuditLogChange
	Details  map[string]any

	parent weak.Pointer[AuditLog]
}

// NewEntry decodes one raw entry against the parent aggregate. A payload
// lacking action_type yields nil; the caller must skip it rather than
// store a placeholder.
func NewEntry(data *discord.AuditLogEntryData, parent *AuditLog) *AuditLogEntry {
	if data == nil || data.ActionType == nil {
		return nil
	}

	entry := &AuditLogEntry{
		ID:       data.ID,
		Type:     EventGet(*data.ActionType),
		TargetID: data.TargetID,
		Reason:   data.Reason,
	}

	entry.Details = convertDetails(data.Options)

	if parent != nil {
		entry.parent = parent.selfReference()
		if data.UserID != 0 {
			entry.User = parent.Users[data.UserID]
		}
	}

	entry.Changes = convertChanges(entry.Type, data.Changes)

	return entry
}

// convertChanges resolves each raw change through the event's target-type
// table, falling back to the merged table, then to identity passthrough.
// Keys in the merge's ambiguous-exclusion set are dropped: guessing a
// type for a key whose semantics diverge across target types would be
// worse than omitting it.
func convertChanges(event *AuditLogEvent, rawChanges []discord.AuditLogChangeData) []AuditLogChange {
	if len(rawChanges) == 0 {
		return nil
	}

	var changes []AuditLogChange
	table := event.TargetType.ChangeConverters
	for _, raw := range rawChanges {
		if raw.Key == "" {
			// Malformed change, skip silently.
			continue
		}

		converter, ok := table[raw.Key]
		if !ok {
			converter, ok = mergedConverters[raw.Key]
			if ok {
				logging.Debug("audit log change key unmapped for target type",
					zap.String("key", raw.Key),
					zap.String("target_type", event.TargetType.Name),
					zap.String("event", event.Name))
			} else {
				if _, excluded := ambiguousKeys[raw.Key]; excluded {
					continue
				}
				converter = passthroughFor(raw.Key)
			}
		}

		change := converter.Convert(raw)
		if change == nil {
			continue
		}
		changes = append(changes, *change)
	}

	if len(changes) == 0 {
		return nil
	}
	return changes
}

var (
	passthroughConvertersMu sync.Mutex
	passthroughConverters   = map[string]ChangeConverter{}
)

// passthroughFor memoizes identity converters for unrecognized keys so
// repeated unknown keys reuse one instance. The cache is global like the
// placeholder registries, hence the lock.
func passthroughFor(key string) ChangeConverter {
	passthroughConvertersMu.Lock()
	defer passthroughConvertersMu.Unlock()

	if converter, ok := passthroughConverters[key]; ok {
		return converter
	}
	converter := passthrough(key)
	passthroughConverters[key] = converter
	return converter
}

// CreatedAt decodes the entry's snowflake into its creation time.
func (e *AuditLogEntry) CreatedAt() time.Time {
	return e.ID.Timestamp()
}

// Parent dereferences the weak back-reference to the owning log; nil once
// the aggregate has been collected.
func (e *AuditLogEntry) Parent() *AuditLog {
	return e.parent.Value()
}

// Target resolves the entity the entry concerns through the event's
// target-type converter. Re-resolved on every call, never cached; nil
// when the target id is unset, the parent is gone, or the entity is not
// cached.
func (e *AuditLogEntry) Target() any {
	return e.Type.TargetType.TargetConverter(e)
}

// Change returns the decoded change with the given attribute name, or
// nil.
func (e *AuditLogEntry) Change(attributeName string) *AuditLogChange {
	for i := range e.Changes {
		if e.Changes[i].AttributeName == attributeName {
			return &e.Changes[i]
		}
	}
	return nil
}

package auditlog

import (
	"iter"
	"weak"

	"go-auditlog/pkg/discord"
)

// AuditLog aggregates one fetch's entries with the id-keyed side-tables
// of entities Discord stages on the payload. Side-tables only grow:
// repeated Populate calls while paging merge into the same maps,
// last-write-wins on a shared id.
//
// Entries hold only a weak reference back to the aggregate, so an
// orphaned entry neither keeps the whole log alive nor breaks when the
// log is collected.
type AuditLog struct {
	Entries         []*AuditLogEntry
	Guild           *discord.Guild
	Users           map[discord.Snowflake]*discord.User
	Webhooks        map[discord.Snowflake]*discord.Webhook
	Integrations    map[discord.Snowflake]*discord.Integration
	Threads         map[discord.Snowflake]*discord.Channel
	ScheduledEvents map[discord.Snowflake]*discord.ScheduledEvent

	self     weak.Pointer[AuditLog]
	selfMade bool
}

// New builds an empty aggregate. Construction and first population are
// separate so callers can hold a log before any page arrives.
func New(guild *discord.Guild) *AuditLog {
	return &AuditLog{
		Users:           make(map[discord.Snowflake]*discord.User),
		Webhooks:        make(map[discord.Snowflake]*discord.Webhook),
		Integrations:    make(map[discord.Snowflake]*discord.Integration),
		Threads:         make(map[discord.Snowflake]*discord.Channel),
		ScheduledEvents: make(map[discord.Snowflake]*discord.ScheduledEvent),
		Guild:           guild,
	}
}

// Populate merges one page into the aggregate: side-tables first, then
// one entry per raw element in wire order. Returns false when the page
// carries no entries, which paging callers read as "no more pages".
// Side-table writes performed before an empty entry list is discovered
// are kept; staged entities are valid regardless of the entry count.
func (l *AuditLog) Populate(page *discord.AuditLogPage) bool {
	if page == nil {
		return false
	}

	for i := range page.Users {
		user := &page.Users[i]
		l.Users[user.ID] = user
	}
	for i := range page.Webhooks {
		webhook := &page.Webhooks[i]
		l.Webhooks[webhook.ID] = webhook
	}
	for i := range page.Integrations {
		integration := &page.Integrations[i]
		l.Integrations[integration.ID] = integration
	}
	for i := range page.Threads {
		thread := &page.Threads[i]
		l.Threads[thread.ID] = thread
	}
	for i := range page.ScheduledEvents {
		event := &page.ScheduledEvents[i]
		l.ScheduledEvents[event.ID] = event
	}

	if len(page.AuditLogEntries) == 0 {
		return false
	}

	for i := range page.AuditLogEntries {
		entry := NewEntry(&page.AuditLogEntries[i], l)
		if entry == nil {
			// Malformed entry, skip rather than store a placeholder.
			continue
		}
		l.Entries = append(l.Entries, entry)
	}

	return true
}

// selfReference hands out the memoized weak reference entries store as
// their parent pointer.
func (l *AuditLog) selfReference() weak.Pointer[AuditLog] {
	if !l.selfMade {
		l.self = weak.Make(l)
		l.selfMade = true
	}
	return l.self
}

func (l *AuditLog) Len() int {
	return len(l.Entries)
}

// At returns the entry at index i in arrival order.
func (l *AuditLog) At(i int) *AuditLogEntry {
	return l.Entries[i]
}

// All iterates entries in arrival order, reverse-chronological per
// Discord's pagination.
func (l *AuditLog) All() iter.Seq[*AuditLogEntry] {
	return func(yield func(*AuditLogEntry) bool) {
		for _, entry := range l.Entries {
			if !yield(entry) {
				return
			}
		}
	}
}

// Backward iterates entries newest-last.
func (l *AuditLog) Backward() iter.Seq[*AuditLogEntry] {
	return func(yield func(*AuditLogEntry) bool) {
		for i := len(l.Entries) - 1; i >= 0; i-- {
			if !yield(l.Entries[i]) {
				return
			}
		}
	}
}

package fetch

import (
	"go-auditlog/pkg/auditlog"
	"go-auditlog/pkg/discord"
)

// pageFetcher is the one Client method the pager needs; narrowed for
// tests.
type pageFetcher interface {
	FetchPage(guildID discord.Snowflake, opts PageOptions) (*discord.AuditLogPage, error)
}

// Pager walks a guild's audit log backwards page by page, merging every
// page into one AuditLog aggregate. Populate returning false on an empty
// page is the end-of-log signal.
type Pager struct {
	client     pageFetcher
	log        *auditlog.AuditLog
	guildID    discord.Snowflake
	actionType int
	limit      int
	before     discord.Snowflake
	done       bool
}

func NewPager(client *Client, guild *discord.Guild, actionType, limit int) *Pager {
	return &Pager{
		client:     client,
		log:        auditlog.New(guild),
		guildID:    guild.ID,
		actionType: actionType,
		limit:      limit,
	}
}

// Log returns the aggregate the pager populates.
func (p *Pager) Log() *auditlog.AuditLog {
	return p.log
}

// Next fetches and merges one page. Returns false once the log is
// exhausted; subsequent calls stay false without fetching.
func (p *Pager) Next() (bool, error) {
	if p.done {
		return false, nil
	}

	page, err := p.client.FetchPage(p.guildID, PageOptions{
		Before:     p.before,
		ActionType: p.actionType,
		Limit:      p.limit,
	})
	if err != nil {
		return false, err
	}

	if !p.log.Populate(page) {
		p.done = true
		return false, nil
	}

	// Entries arrive newest first; the oldest one anchors the next page.
	p.before = p.log.At(p.log.Len() - 1).ID
	return true, nil
}

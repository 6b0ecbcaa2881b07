package fetch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-auditlog/pkg/auditlog"
	"go-auditlog/pkg/discord"
)

type stubFetcher struct {
	pages []*discord.AuditLogPage
	calls []PageOptions
	err   error
}

func (s *stubFetcher) FetchPage(guildID discord.Snowflake, opts PageOptions) (*discord.AuditLogPage, error) {
	s.calls = append(s.calls, opts)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.pages) == 0 {
		return &discord.AuditLogPage{}, nil
	}
	page := s.pages[0]
	s.pages = s.pages[1:]
	return page, nil
}

func page(ids ...discord.Snowflake) *discord.AuditLogPage {
	actionType := 22
	p := &discord.AuditLogPage{}
	for _, id := range ids {
		p.AuditLogEntries = append(p.AuditLogEntries, discord.AuditLogEntryData{
			ID:         id,
			ActionType: &actionType,
		})
	}
	return p
}

func newTestPager(stub *stubFetcher) *Pager {
	guild := discord.NewGuild(1, "test")
	return &Pager{
		client:  stub,
		log:     auditlog.New(guild),
		guildID: guild.ID,
		limit:   2,
	}
}

func TestPagerWalksUntilEmptyPage(t *testing.T) {
	stub := &stubFetcher{pages: []*discord.AuditLogPage{
		page(30, 20),
		page(10),
	}}
	pager := newTestPager(stub)

	more, err := pager.Next()
	require.NoError(t, err)
	assert.True(t, more)

	more, err = pager.Next()
	require.NoError(t, err)
	assert.True(t, more)

	more, err = pager.Next()
	require.NoError(t, err)
	assert.False(t, more)

	assert.Equal(t, 3, pager.Log().Len())

	// The oldest entry of each page anchors the next request.
	require.Len(t, stub.calls, 3)
	assert.Equal(t, discord.Snowflake(0), stub.calls[0].Before)
	assert.Equal(t, discord.Snowflake(20), stub.calls[1].Before)
	assert.Equal(t, discord.Snowflake(10), stub.calls[2].Before)
}

func TestPagerStaysDoneWithoutFetching(t *testing.T) {
	stub := &stubFetcher{}
	pager := newTestPager(stub)

	more, err := pager.Next()
	require.NoError(t, err)
	assert.False(t, more)

	more, err = pager.Next()
	require.NoError(t, err)
	assert.False(t, more)

	assert.Len(t, stub.calls, 1)
}

func TestPagerPropagatesFetchErrors(t *testing.T) {
	stub := &stubFetcher{err: errors.New("boom")}
	pager := newTestPager(stub)

	more, err := pager.Next()
	assert.False(t, more)
	assert.ErrorContains(t, err, "boom")

	// A fetch error is not exhaustion; the pager may be retried.
	stub.err = nil
	stub.pages = []*discord.AuditLogPage{page(5)}
	more, err = pager.Next()
	require.NoError(t, err)
	assert.True(t, more)
}

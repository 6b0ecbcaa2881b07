// Package fetch retrieves raw audit-log pages from the Discord REST API.
// It does one bounded request per page and surfaces HTTP failures as
// errors; rate-limit buckets and retries are out of scope.
package fetch

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"go-auditlog/pkg/discord"
)

const defaultPoolSize = 4

type Client struct {
	token   string
	baseURL string
	clients []*fasthttp.Client
	index   int
}

func NewClient(token, baseURL string, poolSize int) *Client {
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ClientSessionCache: tls.NewLRUClientSessionCache(64),
	}

	clients := make([]*fasthttp.Client, poolSize)
	for i := 0; i < poolSize; i++ {
		clients[i] = &fasthttp.Client{
			MaxConnsPerHost:     64,
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxResponseBodySize: 4 * 1024 * 1024,
			TLSConfig:           tlsConfig,
		}
	}

	return &Client{
		token:   token,
		baseURL: baseURL,
		clients: clients,
	}
}

func (c *Client) client() *fasthttp.Client {
	client := c.clients[c.index]
	c.index = (c.index + 1) % len(c.clients)
	return client
}

// PageOptions narrows one audit-log page request. Zero values mean
// "unset" and are omitted from the query.
type PageOptions struct {
	Before     discord.Snowflake
	ActionType int
	Limit      int
}

// FetchPage retrieves one raw audit-log page for a guild.
func (c *Client) FetchPage(guildID discord.Snowflake, opts PageOptions) (*discord.AuditLogPage, error) {
	uri := fmt.Sprintf("%s/guilds/%s/audit-logs", c.baseURL, guildID)
	sep := "?"
	if opts.Before != 0 {
		uri += sep + "before=" + opts.Before.String()
		sep = "&"
	}
	if opts.ActionType != 0 {
		uri += sep + fmt.Sprintf("action_type=%d", opts.ActionType)
		sep = "&"
	}
	if opts.Limit != 0 {
		uri += sep + fmt.Sprintf("limit=%d", opts.Limit)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bot "+c.token)

	if err := c.client().DoTimeout(req, resp, 15*time.Second); err != nil {
		return nil, fmt.Errorf("audit log fetch failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("audit log fetch failed: status %d", resp.StatusCode())
	}

	var page discord.AuditLogPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("audit log decode failed: %w", err)
	}

	return &page, nil
}

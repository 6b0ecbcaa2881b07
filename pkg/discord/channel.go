package discord

type Channel struct {
	ID                   Snowflake             `json:"id"`
	Type                 ChannelType           `json:"type"`
	GuildID              Snowflake             `json:"guild_id"`
	Name                 string                `json:"name"`
	Topic                string                `json:"topic"`
	Position             int                   `json:"position"`
	NSFW                 bool                  `json:"nsfw"`
	Bitrate              int                   `json:"bitrate"`
	UserLimit            int                   `json:"user_limit"`
	RateLimitPerUser     int                   `json:"rate_limit_per_user"`
	ParentID             Snowflake             `json:"parent_id"`
	OwnerID              Snowflake             `json:"owner_id"`
	PermissionOverwrites []PermissionOverwrite `json:"permission_overwrites"`
	AvailableTags        []ForumTag            `json:"available_tags"`
	AppliedTags          []Snowflake           `json:"applied_tags"`
	ThreadMetadata       *ThreadMetadata       `json:"thread_metadata"`
}

// IsThread reports whether the channel is one of the three thread types.
func (c *Channel) IsThread() bool {
	switch c.Type {
	case ChannelTypeAnnouncementThread, ChannelTypePublicThread, ChannelTypePrivateThread:
		return true
	}
	return false
}

type ThreadMetadata struct {
	Archived            bool   `json:"archived"`
	AutoArchiveDuration int    `json:"auto_archive_duration"`
	ArchiveTimestamp    string `json:"archive_timestamp"`
	Locked              bool   `json:"locked"`
	Invitable           bool   `json:"invitable"`
}

type ForumTag struct {
	ID        Snowflake `json:"id"`
	Name      string    `json:"name"`
	Moderated bool      `json:"moderated"`
	EmojiID   Snowflake `json:"emoji_id"`
	EmojiName string    `json:"emoji_name"`
}

// PermissionOverwrite is one per-role or per-member permission override on
// a channel. Allow and deny arrive as decimal strings.
type PermissionOverwrite struct {
	ID    Snowflake     `json:"id"`
	Type  OverwriteType `json:"type"`
	Allow Permissions   `json:"allow,string"`
	Deny  Permissions   `json:"deny,string"`
}

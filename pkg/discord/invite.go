package discord

// Invite is the audit log's view of an invite. Deleted invites leave no
// target id on the wire, so an entry-derived invite may carry only a code.
type Invite struct {
	Code      string    `json:"code"`
	ChannelID Snowflake `json:"channel_id"`
	InviterID Snowflake `json:"inviter_id"`
	MaxUses   int       `json:"max_uses"`
	Uses      int       `json:"uses"`
	MaxAge    int       `json:"max_age"`
	Temporary bool      `json:"temporary"`
}

package discord

type Webhook struct {
	ID            Snowflake   `json:"id"`
	Type          WebhookType `json:"type"`
	GuildID       Snowflake   `json:"guild_id"`
	ChannelID     Snowflake   `json:"channel_id"`
	Name          string      `json:"name"`
	Avatar        string      `json:"avatar"`
	ApplicationID Snowflake   `json:"application_id"`
	User          *User       `json:"user"`
}

type Integration struct {
	ID                Snowflake          `json:"id"`
	Name              string             `json:"name"`
	Type              string             `json:"type"`
	Enabled           bool               `json:"enabled"`
	Account           IntegrationAccount `json:"account"`
	EnableEmoticons   bool               `json:"enable_emoticons"`
	ExpireBehavior    ExpireBehavior     `json:"expire_behavior"`
	ExpireGracePeriod int                `json:"expire_grace_period"`
}

type IntegrationAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

package discord

type Emoji struct {
	ID        Snowflake `json:"id"`
	Name      string    `json:"name"`
	Animated  bool      `json:"animated"`
	Managed   bool      `json:"managed"`
	Available bool      `json:"available"`
}

type Sticker struct {
	ID          Snowflake     `json:"id"`
	GuildID     Snowflake     `json:"guild_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Tags        string        `json:"tags"`
	FormatType  StickerFormat `json:"format_type"`
	Available   bool          `json:"available"`
}

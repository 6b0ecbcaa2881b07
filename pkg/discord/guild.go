package discord

// Guild is the audit log's owning guild with its id-keyed entity lookup
// tables. Target converters consult these for entities Discord does not
// stage on the audit-log payload itself (channels, roles, emojis,
// stickers).
type Guild struct {
	ID       Snowflake
	Name     string
	OwnerID  Snowflake
	Channels map[Snowflake]*Channel
	Roles    map[Snowflake]*Role
	Emojis   map[Snowflake]*Emoji
	Stickers map[Snowflake]*Sticker
}

func NewGuild(id Snowflake, name string) *Guild {
	return &Guild{
		ID:       id,
		Name:     name,
		Channels: make(map[Snowflake]*Channel),
		Roles:    make(map[Snowflake]*Role),
		Emojis:   make(map[Snowflake]*Emoji),
		Stickers: make(map[Snowflake]*Sticker),
	}
}

func (g *Guild) Channel(id Snowflake) *Channel {
	if g == nil {
		return nil
	}
	return g.Channels[id]
}

func (g *Guild) Role(id Snowflake) *Role {
	if g == nil {
		return nil
	}
	return g.Roles[id]
}

func (g *Guild) Emoji(id Snowflake) *Emoji {
	if g == nil {
		return nil
	}
	return g.Emojis[id]
}

func (g *Guild) Sticker(id Snowflake) *Sticker {
	if g == nil {
		return nil
	}
	return g.Stickers[id]
}

package discord

type User struct {
	ID            Snowflake `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	GlobalName    string    `json:"global_name"`
	Avatar        string    `json:"avatar"`
	Bot           bool      `json:"bot"`
}

// DisplayName prefers the modern global name over the legacy
// username#discriminator pair.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	if u.Discriminator != "" && u.Discriminator != "0" {
		return u.Username + "#" + u.Discriminator
	}
	return u.Username
}

type Role struct {
	ID          Snowflake   `json:"id"`
	Name        string      `json:"name"`
	Color       Color       `json:"color"`
	Hoist       bool        `json:"hoist"`
	Position    int         `json:"position"`
	Permissions Permissions `json:"permissions,string"`
	Mentionable bool        `json:"mentionable"`
}

// PartialRole is the {id, name} shape the audit log's $add/$remove member
// role changes carry.
type PartialRole struct {
	ID   Snowflake `json:"id"`
	Name string    `json:"name"`
}

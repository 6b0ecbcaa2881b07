package discord

import "strconv"

// Permissions is Discord's permission bitset. The API serializes it as a
// decimal string because the set outgrew 53-bit JSON numbers.
type Permissions uint64

func (p Permissions) Has(bit Permissions) bool {
	return p&bit == bit
}

func (p Permissions) String() string {
	return strconv.FormatUint(uint64(p), 10)
}

// ParsePermissions parses the wire's decimal string form. Malformed input
// yields the empty set.
func ParsePermissions(s string) Permissions {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return Permissions(n)
}

const (
	PermissionKickMembers     Permissions = 1 << 1
	PermissionBanMembers      Permissions = 1 << 2
	PermissionAdministrator   Permissions = 1 << 3
	PermissionManageChannels  Permissions = 1 << 4
	PermissionManageGuild     Permissions = 1 << 5
	PermissionViewAuditLog    Permissions = 1 << 7
	PermissionManageMessages  Permissions = 1 << 13
	PermissionManageRoles     Permissions = 1 << 28
	PermissionManageWebhooks  Permissions = 1 << 29
	PermissionModerateMembers Permissions = 1 << 40
)

// Color is a 24-bit RGB role color.
type Color int

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

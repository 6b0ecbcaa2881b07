// Package auditlog decodes Discord guild audit-log payloads into a typed
// object graph: an AuditLog aggregate with side-tables of referenced
// entities, and per-entry changes resolved through per-target-type
// converter tables.
package auditlog

import (
	"go-auditlog/pkg/discord"
)

// AuditLogChange is one decoded before/after pair. AttributeName is the
// normalized domain name, not necessarily the raw wire key: converters
// rename keys (splash_hash becomes invite_splash, locked becomes the
// inverted open). Before and After hold typed values once a converter has
// run, never raw wire primitives.
type AuditLogChange struct {
	AttributeName string
	Before        any
	After         any
}

// ChangeConverter maps one raw change entry to a typed change. A nil
// result drops the entry, used for deprecated or duplicated wire fields.
//
// Converter values are compared by identity when tables are merged, so a
// key shared across target types with the same meaning must reuse a
// single converter instance, while a key whose meaning diverges gets a
// distinct instance per table. All implementations here are pointers,
// making interface equality pointer identity.
type ChangeConverter interface {
	Convert(change discord.AuditLogChangeData) *AuditLogChange
}

// ChangeConverterTable maps a wire change key to its converter.
type ChangeConverterTable map[string]ChangeConverter

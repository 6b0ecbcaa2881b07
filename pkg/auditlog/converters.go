package auditlog

import (
	"encoding/json"
	"sort"
	"strings"

	"go-auditlog/pkg/discord"
)

// Converter implementations. Constructors return pointer values so that
// table merging can compare converters by identity: reusing one instance
// across tables marks "same meaning", distinct instances for the same key
// mark divergent semantics the merged table must refuse to guess at.

type passthroughConverter struct{ name string }

// passthrough renames the key and copies both sides verbatim.
func passthrough(name string) ChangeConverter {
	return &passthroughConverter{name}
}

func (c *passthroughConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        decodeAny(change.OldValue),
		After:         decodeAny(change.NewValue),
	}
}

type deprecatedConverter struct{}

func (c *deprecatedConverter) Convert(discord.AuditLogChangeData) *AuditLogChange {
	return nil
}

type stringConverter struct{ name string }

func asString(name string) ChangeConverter {
	return &stringConverter{name}
}

func (c *stringConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        decodeString(change.OldValue),
		After:         decodeString(change.NewValue),
	}
}

type boolConverter struct {
	name   string
	invert bool
}

func asBool(name string) ChangeConverter {
	return &boolConverter{name: name}
}

// asInvertedBool applies a logical NOT on top of the rename, for wire
// fields whose domain meaning is the opposite polarity (locked vs open).
func asInvertedBool(name string) ChangeConverter {
	return &boolConverter{name: name, invert: true}
}

func (c *boolConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		v := decodeBool(raw)
		if v == nil {
			return nil
		}
		if c.invert {
			return !v.(bool)
		}
		return v
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

type intConverter struct {
	name  string
	scale int64
}

func asInt(name string) ChangeConverter {
	return &intConverter{name: name, scale: 1}
}

// asScaledInt multiplies the wire value on the way in, for unit
// conversions such as auto-archive minutes to seconds.
func asScaledInt(name string, scale int64) ChangeConverter {
	return &intConverter{name: name, scale: scale}
}

func (c *intConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		n, ok := decodeInt(raw)
		if !ok {
			return nil
		}
		return n * c.scale
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

type snowflakeConverter struct{ name string }

func asSnowflake(name string) ChangeConverter {
	return &snowflakeConverter{name}
}

func (c *snowflakeConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        decodeSnowflake(change.OldValue),
		After:         decodeSnowflake(change.NewValue),
	}
}

type snowflakeArrayConverter struct{ name string }

func asSnowflakeArray(name string) ChangeConverter {
	return &snowflakeArrayConverter{name}
}

func (c *snowflakeArrayConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        decodeSnowflakeArray(change.OldValue),
		After:         decodeSnowflakeArray(change.NewValue),
	}
}

type permissionConverter struct{ name string }

func asPermissions(name string) ChangeConverter {
	return &permissionConverter{name}
}

func (c *permissionConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        decodePermissions(change.OldValue),
		After:         decodePermissions(change.NewValue),
	}
}

type colorConverter struct{ name string }

func asColor(name string) ChangeConverter {
	return &colorConverter{name}
}

func (c *colorConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		n, ok := decodeInt(raw)
		if !ok {
			return nil
		}
		return discord.Color(n)
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

type iconConverter struct{ name string }

// asIcon converts a wire hash string to a structured icon and renames
// the *_hash key to its domain name.
func asIcon(name string) ChangeConverter {
	return &iconConverter{name}
}

func (c *iconConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		s := decodeString(raw)
		if s == nil {
			return nil
		}
		icon := discord.ParseIcon(s.(string))
		if icon == nil {
			return nil
		}
		return icon
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

type timestampConverter struct{ name string }

func asTimestamp(name string) ChangeConverter {
	return &timestampConverter{name}
}

func (c *timestampConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        decodeTimestamp(change.OldValue),
		After:         decodeTimestamp(change.NewValue),
	}
}

type tagSetConverter struct{ name string }

// asTagSet splits a comma-space-delimited tag string into a sorted,
// deduplicated set. Empty input collapses to nil.
func asTagSet(name string) ChangeConverter {
	return &tagSetConverter{name}
}

func (c *tagSetConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		s := decodeString(raw)
		if s == nil || s.(string) == "" {
			return nil
		}
		seen := make(map[string]struct{})
		var tags []string
		for _, tag := range strings.Split(s.(string), ", ") {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
		if len(tags) == 0 {
			return nil
		}
		sort.Strings(tags)
		return tags
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

type enumConverter struct {
	name string
	wrap func(int64) any
}

// asEnum resolves a wire integer into the enum the wrap function names.
// Null stays nil; unknown values still wrap, enums here are open-coded
// integers.
func asEnum(name string, wrap func(int64) any) ChangeConverter {
	return &enumConverter{name: name, wrap: wrap}
}

func (c *enumConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		n, ok := decodeInt(raw)
		if !ok {
			return nil
		}
		return c.wrap(n)
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

type listConverter struct {
	name   string
	decode func(json.RawMessage) any
}

// asList rehydrates a wire list of sub-documents through the element
// type's own decoder. Empty and absent lists collapse to nil.
func asList(name string, decode func(json.RawMessage) any) ChangeConverter {
	return &listConverter{name: name, decode: decode}
}

func (c *listConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		if rawAbsent(raw) {
			return nil
		}
		return c.decode(raw)
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

type metadataConverter struct {
	name  string
	parse func(json.RawMessage) any
}

// asMetadata handles polymorphic sub-documents whose concrete type is
// picked by shape inspection. Unrecognized shapes collapse that side to
// nil rather than failing the entry.
func asMetadata(name string, parse func(json.RawMessage) any) ChangeConverter {
	return &metadataConverter{name: name, parse: parse}
}

func (c *metadataConverter) Convert(change discord.AuditLogChangeData) *AuditLogChange {
	side := func(raw json.RawMessage) any {
		if rawAbsent(raw) {
			return nil
		}
		return c.parse(raw)
	}
	return &AuditLogChange{
		AttributeName: c.name,
		Before:        side(change.OldValue),
		After:         side(change.NewValue),
	}
}

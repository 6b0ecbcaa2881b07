package auditlog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"go-auditlog/pkg/discord"
)

// Raw-side decode helpers shared by the change converters. Each maps one
// raw JSON value to a typed value, or nil for absent/null/empty input.
// Coercion failures on structurally broken values also collapse to nil;
// the audit log carries best-effort data, not authoritative state.

func rawAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func decodeString(raw json.RawMessage) any {
	if rawAbsent(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

func decodeBool(raw json.RawMessage) any {
	if rawAbsent(raw) {
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	return b
}

func decodeInt(raw json.RawMessage) (int64, bool) {
	if rawAbsent(raw) {
		return 0, false
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		// Some numeric fields arrive as decimal strings.
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		var err2 error
		n, err2 = parseInt(s)
		if err2 != nil {
			return 0, false
		}
	}
	return n, true
}

func decodeSnowflake(raw json.RawMessage) any {
	if rawAbsent(raw) {
		return nil
	}
	var id discord.Snowflake
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil
	}
	return id
}

// decodeSnowflakeArray normalizes empty and absent collections to nil,
// never an empty slice.
func decodeSnowflakeArray(raw json.RawMessage) any {
	if rawAbsent(raw) {
		return nil
	}
	var ids []discord.Snowflake
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func decodeTimestamp(raw json.RawMessage) any {
	s := decodeString(raw)
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.(string))
	if err != nil {
		return nil
	}
	return t
}

func decodePermissions(raw json.RawMessage) any {
	if rawAbsent(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// Older payloads carried permissions as bare numbers.
		n, ok := decodeInt(raw)
		if !ok {
			return nil
		}
		return discord.Permissions(n)
	}
	return discord.ParsePermissions(s)
}

// decodeAny is the identity fallback for unrecognized keys. json.Number
// keeps 64-bit ids exact.
func decodeAny(raw json.RawMessage) any {
	if rawAbsent(raw) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

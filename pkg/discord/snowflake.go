package discord

import (
	"bytes"
	"strconv"
	"time"
)

// DiscordEpoch is the first millisecond of 2015, the zero point of the
// timestamp embedded in every snowflake.
const DiscordEpoch int64 = 1420070400000

// Snowflake is Discord's 64-bit unsigned identifier. The REST API sends
// snowflakes as decimal strings, the gateway occasionally as bare numbers,
// so unmarshalling accepts both. The zero value means "no id".
type Snowflake uint64

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Timestamp decodes the creation time embedded in the snowflake.
func (s Snowflake) Timestamp() time.Time {
	return time.UnixMilli(int64(s>>22) + DiscordEpoch)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Snowflake) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*s = Snowflake(n)
	return nil
}

// ParseSnowflake parses a decimal snowflake string. Malformed input
// yields the zero snowflake.
func ParseSnowflake(s string) Snowflake {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return Snowflake(n)
}

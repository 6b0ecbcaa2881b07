package discord

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Snowflake
	}{
		{"quoted string", `"175928847299117063"`, 175928847299117063},
		{"bare number", `175928847299117063`, 175928847299117063},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Snowflake
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestSnowflakeUnmarshalRejectsGarbage(t *testing.T) {
	var s Snowflake
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &s))
}

func TestSnowflakeMarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Snowflake(55))
	require.NoError(t, err)
	assert.Equal(t, `"55"`, string(data))
}

func TestSnowflakeTimestamp(t *testing.T) {
	// The reference snowflake from the Discord documentation.
	s := Snowflake(175928847299117063)
	assert.Equal(t, int64(1462015105796), s.Timestamp().UnixMilli())
}

func TestParseSnowflake(t *testing.T) {
	assert.Equal(t, Snowflake(42), ParseSnowflake("42"))
	assert.Equal(t, Snowflake(0), ParseSnowflake("nope"))
	assert.Equal(t, Snowflake(0), ParseSnowflake(""))
}

func TestParseIcon(t *testing.T) {
	assert.Nil(t, ParseIcon(""))
	assert.Equal(t, &Icon{Hash: "abc"}, ParseIcon("abc"))
	assert.Equal(t, &Icon{Hash: "abc", Animated: true}, ParseIcon("a_abc"))
	assert.Equal(t, "a_abc", ParseIcon("a_abc").String())
}

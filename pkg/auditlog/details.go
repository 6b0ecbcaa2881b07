package auditlog

import (
	"encoding/json"

	"go-auditlog/pkg/discord"
)

// DetailConverter maps one raw options key-value pair to a named, typed
// detail. ok=false drops the pair.
type DetailConverter func(key string, raw json.RawMessage) (name string, value any, ok bool)

func detailSnowflake(key string, raw json.RawMessage) (string, any, bool) {
	v := decodeSnowflake(raw)
	if v == nil {
		return "", nil, false
	}
	return key, v, true
}

func detailInt(key string, raw json.RawMessage) (string, any, bool) {
	n, ok := decodeInt(raw)
	if !ok {
		return "", nil, false
	}
	return key, n, true
}

func detailString(key string, raw json.RawMessage) (string, any, bool) {
	v := decodeString(raw)
	if v == nil {
		return "", nil, false
	}
	return key, v, true
}

func detailOverwriteType(key string, raw json.RawMessage) (string, any, bool) {
	n, ok := decodeInt(raw)
	if !ok {
		return "", nil, false
	}
	return "overwrite_type", discord.OverwriteType(n), true
}

func detailTriggerType(key string, raw json.RawMessage) (string, any, bool) {
	n, ok := decodeInt(raw)
	if !ok {
		return "", nil, false
	}
	return "trigger_type", discord.AutoModerationTriggerType(n), true
}

// detailConverters is a flat global table: details are target-independent
// informational fields, unlike changes there is no per-target-type
// dispatch. Unlisted keys pass through with json.Number-exact values.
var detailConverters = map[string]DetailConverter{
	"id":                                detailSnowflake,
	"channel_id":                        detailSnowflake,
	"message_id":                        detailSnowflake,
	"application_id":                    detailSnowflake,
	"count":                             detailInt,
	"delete_member_days":                detailInt,
	"members_removed":                   detailInt,
	"type":                              detailOverwriteType,
	"role_name":                         detailString,
	"integration_type":                  detailString,
	"status":                            detailString,
	"auto_moderation_rule_name":         detailString,
	"auto_moderation_rule_trigger_type": detailTriggerType,
}

// convertDetails decodes the wire's options sub-object. An empty result
// collapses to nil, never an empty map.
func convertDetails(options map[string]json.RawMessage) map[string]any {
	if len(options) == 0 {
		return nil
	}

	details := make(map[string]any)
	for key, raw := range options {
		converter, found := detailConverters[key]
		if !found {
			if v := decodeAny(raw); v != nil {
				details[key] = v
			}
			continue
		}
		name, value, ok := converter(key, raw)
		if !ok {
			continue
		}
		details[name] = value
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

package auditlog

import (
	"encoding/json"

	"go-auditlog/pkg/discord"
)

// Shared converter instances. A key that means the same thing on several
// target types must point at the same instance here, so MergeConverters
// keeps it in the fallback table; keys whose meaning diverges get
// per-table instances below and fall out of the merge.
var (
	convertDeprecated ChangeConverter = &deprecatedConverter{}

	convertName          = asString("name")
	convertDescription   = asString("description")
	convertTopic         = asString("topic")
	convertPosition      = asInt("position")
	convertChannelID     = asSnowflake("channel_id")
	convertApplicationID = asSnowflake("application_id")
	convertAvatarHash    = asIcon("avatar")
	convertIconHash      = asIcon("icon")
	convertSlowmode      = asInt("slowmode")
	convertChannelFlags  = asInt("flags")
	convertChannelType   = asEnum("type", func(n int64) any { return discord.ChannelType(n) })
	convertPrivacyLevel  = asEnum("privacy_level", func(n int64) any { return discord.PrivacyLevel(n) })

	convertOverwrites = asList("permission_overwrites", func(raw json.RawMessage) any {
		var overwrites []discord.PermissionOverwrite
		if err := json.Unmarshal(raw, &overwrites); err != nil || len(overwrites) == 0 {
			return nil
		}
		return overwrites
	})

	convertForumTags = asList("available_tags", func(raw json.RawMessage) any {
		var tags []discord.ForumTag
		if err := json.Unmarshal(raw, &tags); err != nil || len(tags) == 0 {
			return nil
		}
		return tags
	})

	convertAutoModerationActions = asList("actions", func(raw json.RawMessage) any {
		var actions []discord.AutoModerationAction
		if err := json.Unmarshal(raw, &actions); err != nil || len(actions) == 0 {
			return nil
		}
		return actions
	})

	convertPartialRoles = func(name string) ChangeConverter {
		return asList(name, func(raw json.RawMessage) any {
			var roles []discord.PartialRole
			if err := json.Unmarshal(raw, &roles); err != nil || len(roles) == 0 {
				return nil
			}
			return roles
		})
	}

	convertAutoModerationTriggerMetadata = asMetadata("trigger_metadata", func(raw json.RawMessage) any {
		meta := discord.ParseAutoModerationTriggerMeta(raw)
		if meta == nil {
			return nil
		}
		return meta
	})

	convertScheduledEventMetadata = asMetadata("entity_metadata", func(raw json.RawMessage) any {
		meta := discord.ParseScheduledEventMetadata(raw)
		if meta == nil {
			return nil
		}
		return meta
	})
)

var guildConverters = ChangeConverterTable{
	"name":                          convertName,
	"description":                   convertDescription,
	"icon_hash":                     convertIconHash,
	"splash_hash":                   asIcon("invite_splash"),
	"discovery_splash_hash":         asIcon("discovery_splash"),
	"banner_hash":                   asIcon("banner"),
	"owner_id":                      asSnowflake("owner_id"),
	"region":                        asString("region"),
	"preferred_locale":              asString("preferred_locale"),
	"afk_channel_id":                asSnowflake("afk_channel_id"),
	"afk_timeout":                   asInt("afk_timeout"),
	"rules_channel_id":              asSnowflake("rules_channel_id"),
	"public_updates_channel_id":     asSnowflake("public_updates_channel_id"),
	"safety_alerts_channel_id":      asSnowflake("safety_alerts_channel_id"),
	"system_channel_id":             asSnowflake("system_channel_id"),
	"system_channel_flags":          asInt("system_channel_flags"),
	"widget_channel_id":             asSnowflake("widget_channel_id"),
	"widget_enabled":                asBool("widget_enabled"),
	"mfa_level":                     asEnum("mfa_level", func(n int64) any { return discord.MFALevel(n) }),
	"verification_level":            asEnum("verification_level", func(n int64) any { return discord.VerificationLevel(n) }),
	"explicit_content_filter":       asEnum("content_filter", func(n int64) any { return discord.ContentFilterLevel(n) }),
	"default_message_notifications": asEnum("message_notification", func(n int64) any { return discord.MessageNotificationLevel(n) }),
	"nsfw_level":                    asEnum("nsfw_level", func(n int64) any { return discord.NSFWLevel(n) }),
	"vanity_url_code":               asString("vanity_code"),
	"prune_delete_days":             asInt("days"),
	"premium_progress_bar_enabled":  asBool("boost_progress_bar_enabled"),
}

var channelConverters = ChangeConverterTable{
	"name":                               convertName,
	"type":                               convertChannelType,
	"topic":                              convertTopic,
	"position":                           convertPosition,
	"bitrate":                            asInt("bitrate"),
	"user_limit":                         asInt("user_limit"),
	"rate_limit_per_user":                convertSlowmode,
	"nsfw":                               asBool("nsfw"),
	"permission_overwrites":              convertOverwrites,
	"parent_id":                          asSnowflake("parent_id"),
	"default_auto_archive_duration":      asScaledInt("default_auto_archive_after", 60),
	"rtc_region":                         asString("region"),
	"video_quality_mode":                 asEnum("video_quality_mode", func(n int64) any { return discord.VideoQualityMode(n) }),
	"available_tags":                     convertForumTags,
	"default_sort_order":                 asEnum("default_sort_order", func(n int64) any { return discord.SortOrder(n) }),
	"default_forum_layout":               asEnum("default_forum_layout", func(n int64) any { return discord.ForumLayout(n) }),
	"default_thread_rate_limit_per_user": asInt("default_thread_slowmode"),
	"flags":                              convertChannelFlags,
	"template":                           convertDeprecated,
}

var threadConverters = ChangeConverterTable{
	"name":                  convertName,
	"type":                  convertChannelType,
	"archived":              asBool("archived"),
	"locked":                asInvertedBool("open"),
	"auto_archive_duration": asScaledInt("auto_archive_after", 60),
	"invitable":             asBool("invitable"),
	"rate_limit_per_user":   convertSlowmode,
	"applied_tags":          asSnowflakeArray("applied_tag_ids"),
	"flags":                 convertChannelFlags,
}

var channelOverwriteConverters = ChangeConverterTable{
	"allow":     asPermissions("allow"),
	"deny":      asPermissions("deny"),
	"allow_new": convertDeprecated,
	"deny_new":  convertDeprecated,
	"id":        asSnowflake("target_id"),
	"type":      asEnum("target_type", func(n int64) any { return discord.OverwriteType(n) }),
}

var userConverters = ChangeConverterTable{
	"nick":                         asString("nick"),
	"deaf":                         asBool("deaf"),
	"mute":                         asBool("mute"),
	"avatar_hash":                  convertAvatarHash,
	"pending":                      asBool("pending"),
	"communication_disabled_until": asTimestamp("timed_out_until"),
	"flags":                        asInt("member_flags"),
	"$add":                         convertPartialRoles("roles_added"),
	"$remove":                      convertPartialRoles("roles_removed"),
}

var roleConverters = ChangeConverterTable{
	"name":            convertName,
	"color":           asColor("color"),
	"hoist":           asBool("separated"),
	"mentionable":     asBool("mentionable"),
	"permissions":     asPermissions("permissions"),
	"permissions_new": convertDeprecated,
	"position":        convertPosition,
	"icon_hash":       convertIconHash,
	"unicode_emoji":   asString("unicode_emoji"),
}

var inviteConverters = ChangeConverterTable{
	"code":       asString("code"),
	"channel_id": convertChannelID,
	"inviter_id": asSnowflake("inviter_id"),
	"max_uses":   asInt("max_uses"),
	"uses":       asInt("uses"),
	"max_age":    asInt("max_age"),
	"temporary":  asBool("temporary"),
	"flags":      asInt("invite_flags"),
}

var webhookConverters = ChangeConverterTable{
	"name":           convertName,
	"channel_id":     convertChannelID,
	"type":           asEnum("type", func(n int64) any { return discord.WebhookType(n) }),
	"avatar_hash":    convertAvatarHash,
	"application_id": convertApplicationID,
}

var emojiConverters = ChangeConverterTable{
	"name": convertName,
}

var integrationConverters = ChangeConverterTable{
	"name":                convertName,
	"type":                asString("type"),
	"enable_emoticons":    asBool("emoticons_enabled"),
	"expire_behavior":     asEnum("expire_behavior", func(n int64) any { return discord.ExpireBehavior(n) }),
	"expire_grace_period": asInt("expire_grace_period"),
}

var stageInstanceConverters = ChangeConverterTable{
	"topic":         convertTopic,
	"privacy_level": convertPrivacyLevel,
}

var stickerConverters = ChangeConverterTable{
	"name":        convertName,
	"description": convertDescription,
	"tags":        asTagSet("tags"),
	"format_type": asEnum("format", func(n int64) any { return discord.StickerFormat(n) }),
	"available":   asBool("available"),
	"guild_id":    asSnowflake("guild_id"),
	"asset":       convertDeprecated,
}

var scheduledEventConverters = ChangeConverterTable{
	"name":            convertName,
	"description":     convertDescription,
	"channel_id":      convertChannelID,
	"status":          asEnum("status", func(n int64) any { return discord.ScheduledEventStatus(n) }),
	"entity_type":     asEnum("entity_type", func(n int64) any { return discord.ScheduledEventEntityType(n) }),
	"entity_metadata": convertScheduledEventMetadata,
	"location":        asString("location"),
	"privacy_level":   convertPrivacyLevel,
	"image_hash":      asIcon("image"),
	"sku_ids":         asSnowflakeArray("sku_ids"),
}

var autoModerationRuleConverters = ChangeConverterTable{
	"name":             convertName,
	"enabled":          asBool("enabled"),
	"event_type":       asEnum("event_type", func(n int64) any { return discord.AutoModerationEventType(n) }),
	"trigger_type":     asEnum("trigger_type", func(n int64) any { return discord.AutoModerationTriggerType(n) }),
	"trigger_metadata": convertAutoModerationTriggerMetadata,
	"actions":          convertAutoModerationActions,
	"exempt_roles":     asSnowflakeArray("excluded_role_ids"),
	"exempt_channels":  asSnowflakeArray("excluded_channel_ids"),
}

// mergedConverters is the global fallback table: the union of every
// per-target-type table with ambiguous keys excluded. The exclusion set
// is kept so entry decoding can tell "unknown key, pass through" apart
// from "known key with conflicting semantics, drop".
var mergedConverters, ambiguousKeys = mergeConverters(
	guildConverters,
	channelConverters,
	threadConverters,
	channelOverwriteConverters,
	userConverters,
	roleConverters,
	inviteConverters,
	webhookConverters,
	emojiConverters,
	integrationConverters,
	stageInstanceConverters,
	stickerConverters,
	scheduledEventConverters,
	autoModerationRuleConverters,
)

package auditlog

import (
	"strconv"
	"sync"
)

// TargetConverter resolves the entity an entry concerns, or nil when the
// id is unset, the parent aggregate is gone, or the entity is not cached
// anywhere the converter looks.
type TargetConverter func(entry *AuditLogEntry) any

// AuditLogTargetType is the category of entity an entry concerns. Each
// value owns the change-converter table applied to entries of that
// category and the converter resolving the entry's target.
type AuditLogTargetType struct {
	Value            int
	Name             string
	ChangeConverters ChangeConverterTable
	TargetConverter  TargetConverter
}

func targetNone(*AuditLogEntry) any { return nil }

var (
	TargetTypeNone = &AuditLogTargetType{
		Value:            0,
		Name:             "none",
		ChangeConverters: ChangeConverterTable{},
		TargetConverter:  targetNone,
	}
	TargetTypeAll = &AuditLogTargetType{
		Value:            1,
		Name:             "all",
		ChangeConverters: mergedConverters,
		TargetConverter:  targetNone,
	}
	TargetTypeGuild = &AuditLogTargetType{
		Value:            2,
		Name:             "guild",
		ChangeConverters: guildConverters,
		TargetConverter:  targetGuild,
	}
	TargetTypeChannel = &AuditLogTargetType{
		Value:            3,
		Name:             "channel",
		ChangeConverters: channelConverters,
		TargetConverter:  targetChannel,
	}
	TargetTypeChannelOverwrite = &AuditLogTargetType{
		Value:            4,
		Name:             "channel permission overwrite",
		ChangeConverters: channelOverwriteConverters,
		TargetConverter:  targetChannelOverwrite,
	}
	TargetTypeUser = &AuditLogTargetType{
		Value:            5,
		Name:             "user",
		ChangeConverters: userConverters,
		TargetConverter:  targetUser,
	}
	TargetTypeRole = &AuditLogTargetType{
		Value:            6,
		Name:             "role",
		ChangeConverters: roleConverters,
		TargetConverter:  targetRole,
	}
	TargetTypeInvite = &AuditLogTargetType{
		Value:            7,
		Name:             "invite",
		ChangeConverters: inviteConverters,
		TargetConverter:  targetInvite,
	}
	TargetTypeWebhook = &AuditLogTargetType{
		Value:            8,
		Name:             "webhook",
		ChangeConverters: webhookConverters,
		TargetConverter:  targetWebhook,
	}
	TargetTypeEmoji = &AuditLogTargetType{
		Value:            9,
		Name:             "emoji",
		ChangeConverters: emojiConverters,
		TargetConverter:  targetEmoji,
	}
	TargetTypeIntegration = &AuditLogTargetType{
		Value:            10,
		Name:             "integration",
		ChangeConverters: integrationConverters,
		TargetConverter:  targetIntegration,
	}
	TargetTypeStageInstance = &AuditLogTargetType{
		Value:            11,
		Name:             "stage instance",
		ChangeConverters: stageInstanceConverters,
		TargetConverter:  targetStageInstance,
	}
	TargetTypeSticker = &AuditLogTargetType{
		Value:            12,
		Name:             "sticker",
		ChangeConverters: stickerConverters,
		TargetConverter:  targetSticker,
	}
	TargetTypeScheduledEvent = &AuditLogTargetType{
		Value:            13,
		Name:             "scheduled event",
		ChangeConverters: scheduledEventConverters,
		TargetConverter:  targetScheduledEvent,
	}
	TargetTypeThread = &AuditLogTargetType{
		Value:            14,
		Name:             "thread",
		ChangeConverters: threadConverters,
		TargetConverter:  targetThread,
	}
	TargetTypeAutoModerationRule = &AuditLogTargetType{
		Value:            15,
		Name:             "auto moderation rule",
		ChangeConverters: autoModerationRuleConverters,
		TargetConverter:  targetNone,
	}
)

var knownTargetTypes = map[int]*AuditLogTargetType{}

func init() {
	for _, targetType := range []*AuditLogTargetType{
		TargetTypeNone, TargetTypeAll, TargetTypeGuild, TargetTypeChannel,
		TargetTypeChannelOverwrite, TargetTypeUser, TargetTypeRole,
		TargetTypeInvite, TargetTypeWebhook, TargetTypeEmoji,
		TargetTypeIntegration, TargetTypeStageInstance, TargetTypeSticker,
		TargetTypeScheduledEvent, TargetTypeThread, TargetTypeAutoModerationRule,
	} {
		knownTargetTypes[targetType.Value] = targetType
	}
}

var (
	placeholderTargetTypesMu sync.Mutex
	placeholderTargetTypes   = map[int]*AuditLogTargetType{}
)

// TargetTypeGet looks up a target type by value. Unknown values
// synthesize a cached placeholder with an empty converter table and a
// nil-returning target converter, so a not-yet-modeled category degrades
// to "changes not understood" instead of failing.
func TargetTypeGet(value int) *AuditLogTargetType {
	if targetType, ok := knownTargetTypes[value]; ok {
		return targetType
	}

	placeholderTargetTypesMu.Lock()
	defer placeholderTargetTypesMu.Unlock()

	if targetType, ok := placeholderTargetTypes[value]; ok {
		return targetType
	}
	targetType := &AuditLogTargetType{
		Value:            value,
		Name:             "unknown " + strconv.Itoa(value),
		ChangeConverters: ChangeConverterTable{},
		TargetConverter:  targetNone,
	}
	placeholderTargetTypes[value] = targetType
	return targetType
}

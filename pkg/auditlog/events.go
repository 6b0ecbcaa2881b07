package auditlog

import (
	"strconv"
	"sync"
)

// AuditLogEvent is one administrative action type, keyed by the wire's
// numeric action_type. Many events share one target type: all three
// channel-permission-overwrite events resolve through the same overwrite
// converter table.
type AuditLogEvent struct {
	Value      int
	Name       string
	TargetType *AuditLogTargetType
}

var (
	EventGuildUpdate = &AuditLogEvent{1, "guild update", TargetTypeGuild}

	EventChannelCreate = &AuditLogEvent{10, "channel create", TargetTypeChannel}
	EventChannelUpdate = &AuditLogEvent{11, "channel update", TargetTypeChannel}
	EventChannelDelete = &AuditLogEvent{12, "channel delete", TargetTypeChannel}

	EventChannelOverwriteCreate = &AuditLogEvent{13, "channel permission overwrite create", TargetTypeChannelOverwrite}
	EventChannelOverwriteUpdate = &AuditLogEvent{14, "channel permission overwrite update", TargetTypeChannelOverwrite}
	EventChannelOverwriteDelete = &AuditLogEvent{15, "channel permission overwrite delete", TargetTypeChannelOverwrite}

	EventMemberKick       = &AuditLogEvent{20, "member kick", TargetTypeUser}
	EventMemberPrune      = &AuditLogEvent{21, "member prune", TargetTypeUser}
	EventMemberBanAdd     = &AuditLogEvent{22, "member ban add", TargetTypeUser}
	EventMemberBanRemove  = &AuditLogEvent{23, "member ban remove", TargetTypeUser}
	EventMemberUpdate     = &AuditLogEvent{24, "member update", TargetTypeUser}
	EventMemberRoleUpdate = &AuditLogEvent{25, "member role update", TargetTypeUser}
	EventMemberMove       = &AuditLogEvent{26, "member move", TargetTypeUser}
	EventMemberDisconnect = &AuditLogEvent{27, "member disconnect", TargetTypeUser}
	EventBotAdd           = &AuditLogEvent{28, "bot add", TargetTypeUser}

	EventRoleCreate = &AuditLogEvent{30, "role create", TargetTypeRole}
	EventRoleUpdate = &AuditLogEvent{31, "role update", TargetTypeRole}
	EventRoleDelete = &AuditLogEvent{32, "role delete", TargetTypeRole}

	EventInviteCreate = &AuditLogEvent{40, "invite create", TargetTypeInvite}
	EventInviteUpdate = &AuditLogEvent{41, "invite update", TargetTypeInvite}
	EventInviteDelete = &AuditLogEvent{42, "invite delete", TargetTypeInvite}

	EventWebhookCreate = &AuditLogEvent{50, "webhook create", TargetTypeWebhook}
	EventWebhookUpdate = &AuditLogEvent{51, "webhook update", TargetTypeWebhook}
	EventWebhookDelete = &AuditLogEvent{52, "webhook delete", TargetTypeWebhook}

	EventEmojiCreate = &AuditLogEvent{60, "emoji create", TargetTypeEmoji}
	EventEmojiUpdate = &AuditLogEvent{61, "emoji update", TargetTypeEmoji}
	EventEmojiDelete = &AuditLogEvent{62, "emoji delete", TargetTypeEmoji}

	EventMessageDelete     = &AuditLogEvent{72, "message delete", TargetTypeUser}
	EventMessageBulkDelete = &AuditLogEvent{73, "message bulk delete", TargetTypeUser}
	EventMessagePin        = &AuditLogEvent{74, "message pin", TargetTypeUser}
	EventMessageUnpin      = &AuditLogEvent{75, "message unpin", TargetTypeUser}

	EventIntegrationCreate = &AuditLogEvent{80, "integration create", TargetTypeIntegration}
	EventIntegrationUpdate = &AuditLogEvent{81, "integration update", TargetTypeIntegration}
	EventIntegrationDelete = &AuditLogEvent{82, "integration delete", TargetTypeIntegration}

	EventStageInstanceCreate = &AuditLogEvent{83, "stage instance create", TargetTypeStageInstance}
	EventStageInstanceUpdate = &AuditLogEvent{84, "stage instance update", TargetTypeStageInstance}
	EventStageInstanceDelete = &AuditLogEvent{85, "stage instance delete", TargetTypeStageInstance}

	EventStickerCreate = &AuditLogEvent{90, "sticker create", TargetTypeSticker}
	EventStickerUpdate = &AuditLogEvent{91, "sticker update", TargetTypeSticker}
	EventStickerDelete = &AuditLogEvent{92, "sticker delete", TargetTypeSticker}

	EventScheduledEventCreate = &AuditLogEvent{100, "scheduled event create", TargetTypeScheduledEvent}
	EventScheduledEventUpdate = &AuditLogEvent{101, "scheduled event update", TargetTypeScheduledEvent}
	EventScheduledEventDelete = &AuditLogEvent{102, "scheduled event delete", TargetTypeScheduledEvent}

	EventThreadCreate = &AuditLogEvent{110, "thread create", TargetTypeThread}
	EventThreadUpdate = &AuditLogEvent{111, "thread update", TargetTypeThread}
	EventThreadDelete = &AuditLogEvent{112, "thread delete", TargetTypeThread}

	EventAutoModerationRuleCreate   = &AuditLogEvent{140, "auto moderation rule create", TargetTypeAutoModerationRule}
	EventAutoModerationRuleUpdate   = &AuditLogEvent{141, "auto moderation rule update", TargetTypeAutoModerationRule}
	EventAutoModerationRuleDelete   = &AuditLogEvent{142, "auto moderation rule delete", TargetTypeAutoModerationRule}
	EventAutoModerationBlockMessage = &AuditLogEvent{143, "auto moderation block message", TargetTypeUser}
	EventAutoModerationFlagMessage  = &AuditLogEvent{144, "auto moderation flag message", TargetTypeUser}
	EventAutoModerationUserTimeout  = &AuditLogEvent{145, "auto moderation user timeout", TargetTypeUser}
)

var knownEvents = map[int]*AuditLogEvent{}

func init() {
	for _, event := range []*AuditLogEvent{
		EventGuildUpdate,
		EventChannelCreate, EventChannelUpdate, EventChannelDelete,
		EventChannelOverwriteCreate, EventChannelOverwriteUpdate, EventChannelOverwriteDelete,
		EventMemberKick, EventMemberPrune, EventMemberBanAdd, EventMemberBanRemove,
		EventMemberUpdate, EventMemberRoleUpdate, EventMemberMove, EventMemberDisconnect, EventBotAdd,
		EventRoleCreate, EventRoleUpdate, EventRoleDelete,
		EventInviteCreate, EventInviteUpdate, EventInviteDelete,
		EventWebhookCreate, EventWebhookUpdate, EventWebhookDelete,
		EventEmojiCreate, EventEmojiUpdate, EventEmojiDelete,
		EventMessageDelete, EventMessageBulkDelete, EventMessagePin, EventMessageUnpin,
		EventIntegrationCreate, EventIntegrationUpdate, EventIntegrationDelete,
		EventStageInstanceCreate, EventStageInstanceUpdate, EventStageInstanceDelete,
		EventStickerCreate, EventStickerUpdate, EventStickerDelete,
		EventScheduledEventCreate, EventScheduledEventUpdate, EventScheduledEventDelete,
		EventThreadCreate, EventThreadUpdate, EventThreadDelete,
		EventAutoModerationRuleCreate, EventAutoModerationRuleUpdate, EventAutoModerationRuleDelete,
		EventAutoModerationBlockMessage, EventAutoModerationFlagMessage, EventAutoModerationUserTimeout,
	} {
		knownEvents[event.Value] = event
	}
}

var (
	placeholderEventsMu sync.Mutex
	placeholderEvents   = map[int]*AuditLogEvent{}
)

// EventGet looks up an event by action_type value. Unknown values
// synthesize a cached placeholder whose target type is the catch-all
// "all", so changes of a not-yet-modeled event still decode through the
// merged fallback table on a best-effort basis.
func EventGet(value int) *AuditLogEvent {
	if event, ok := knownEvents[value]; ok {
		return event
	}

	placeholderEventsMu.Lock()
	defer placeholderEventsMu.Unlock()

	if event, ok := placeholderEvents[value]; ok {
		return event
	}
	event := &AuditLogEvent{
		Value:      value,
		Name:       "unknown " + strconv.Itoa(value),
		TargetType: TargetTypeAll,
	}
	placeholderEvents[value] = event
	return event
}

// IsDelete reports whether the event records a deletion. Invite target
// reconstruction reads the change's before side on deletes.
func (e *AuditLogEvent) IsDelete() bool {
	switch e.Value {
	case 12, 15, 32, 42, 52, 62, 72, 73, 82, 85, 92, 102, 112, 142:
		return true
	}
	return false
}

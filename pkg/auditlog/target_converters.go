package auditlog

import (
	"go-auditlog/internal/registry"
	"go-auditlog/pkg/discord"
)

// Target converters, one per target type. The common contract: a falsy
// target id resolves to nil, a collected parent resolves to nil, and a
// cache miss resolves to nil rather than a synthesized placeholder. The
// invite converter is the exception, reconstructing its target from the
// entry's own changes because deleted invites leave no id on the wire.

func targetGuild(entry *AuditLogEntry) any {
	parent := entry.Parent()
	if parent == nil || parent.Guild == nil {
		return nil
	}
	return parent.Guild
}

func targetChannel(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if channel := parent.Guild.Channel(entry.TargetID); channel != nil {
		return channel
	}
	if channel := registry.Channel(entry.TargetID); channel != nil {
		return channel
	}
	return nil
}

// targetChannelOverwrite resolves the overwrite itself: the entry's
// target id is the channel, the details carry the overwritten role or
// member id.
func targetChannelOverwrite(entry *AuditLogEntry) any {
	channel, _ := targetChannel(entry).(*discord.Channel)
	if channel == nil {
		return nil
	}
	overwriteID, ok := entry.Details["id"].(discord.Snowflake)
	if !ok {
		return nil
	}
	for i := range channel.PermissionOverwrites {
		if channel.PermissionOverwrites[i].ID == overwriteID {
			return &channel.PermissionOverwrites[i]
		}
	}
	return nil
}

func targetUser(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if user := parent.Users[entry.TargetID]; user != nil {
		return user
	}
	return nil
}

func targetRole(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if role := parent.Guild.Role(entry.TargetID); role != nil {
		return role
	}
	return nil
}

// targetInvite scans the entry's own changes for the invite code: the
// before side on delete events, the after side otherwise. A missing code
// change yields an invite with an empty code, tolerating malformed data.
func targetInvite(entry *AuditLogEntry) any {
	invite := &discord.Invite{}
	if change := entry.Change("code"); change != nil {
		side := change.After
		if entry.Type.IsDelete() {
			side = change.Before
		}
		if code, ok := side.(string); ok {
			invite.Code = code
		}
	}
	return invite
}

func targetWebhook(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if webhook := parent.Webhooks[entry.TargetID]; webhook != nil {
		return webhook
	}
	return nil
}

func targetEmoji(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if emoji := parent.Guild.Emoji(entry.TargetID); emoji != nil {
		return emoji
	}
	return nil
}

func targetIntegration(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if integration := parent.Integrations[entry.TargetID]; integration != nil {
		return integration
	}
	return nil
}

func targetStageInstance(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	if entry.Parent() == nil {
		return nil
	}
	if instance := registry.StageInstance(entry.TargetID); instance != nil {
		return instance
	}
	return nil
}

func targetSticker(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if sticker := parent.Guild.Sticker(entry.TargetID); sticker != nil {
		return sticker
	}
	return nil
}

func targetScheduledEvent(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if event := parent.ScheduledEvents[entry.TargetID]; event != nil {
		return event
	}
	return nil
}

func targetThread(entry *AuditLogEntry) any {
	if entry.TargetID == 0 {
		return nil
	}
	parent := entry.Parent()
	if parent == nil {
		return nil
	}
	if thread := parent.Threads[entry.TargetID]; thread != nil {
		return thread
	}
	return nil
}

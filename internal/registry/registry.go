// Package registry holds the process-wide, size-bounded entity caches the
// audit-log target converters consult for entities Discord neither stages
// on the audit-log payload nor scopes to a guild snapshot.
package registry

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"go-auditlog/pkg/discord"
)

const (
	defaultChannelCapacity = 4096
	defaultStageCapacity   = 512
)

var (
	channels       *lru.Cache[discord.Snowflake, *discord.Channel]
	stageInstances *lru.Cache[discord.Snowflake, *discord.StageInstance]
)

func init() {
	// Capacities are positive constants, lru.New cannot fail here.
	channels, _ = lru.New[discord.Snowflake, *discord.Channel](defaultChannelCapacity)
	stageInstances, _ = lru.New[discord.Snowflake, *discord.StageInstance](defaultStageCapacity)
}

// Init resizes the caches. Existing entries survive up to the new bounds.
func Init(channelCapacity, stageCapacity int) {
	if channelCapacity > 0 {
		channels.Resize(channelCapacity)
	}
	if stageCapacity > 0 {
		stageInstances.Resize(stageCapacity)
	}
}

func PutChannel(channel *discord.Channel) {
	if channel == nil || channel.ID == 0 {
		return
	}
	channels.Add(channel.ID, channel)
}

func Channel(id discord.Snowflake) *discord.Channel {
	channel, ok := channels.Get(id)
	if !ok {
		return nil
	}
	return channel
}

func PutStageInstance(instance *discord.StageInstance) {
	if instance == nil || instance.ID == 0 {
		return
	}
	stageInstances.Add(instance.ID, instance)
}

func StageInstance(id discord.Snowflake) *discord.StageInstance {
	instance, ok := stageInstances.Get(id)
	if !ok {
		return nil
	}
	return instance
}

// Reset drops every cached entity, used between tests.
func Reset() {
	channels.Purge()
	stageInstances.Purge()
}

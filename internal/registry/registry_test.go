package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-auditlog/pkg/discord"
)

func TestChannelRoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.Nil(t, Channel(1))

	channel := &discord.Channel{ID: 1, Name: "general"}
	PutChannel(channel)
	assert.Same(t, channel, Channel(1))
}

func TestPutIgnoresInvalidEntities(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	PutChannel(nil)
	PutChannel(&discord.Channel{})
	PutStageInstance(nil)
	PutStageInstance(&discord.StageInstance{})

	assert.Nil(t, Channel(0))
	assert.Nil(t, StageInstance(0))
}

func TestStageInstanceRoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	instance := &discord.StageInstance{ID: 2, Topic: "ama"}
	PutStageInstance(instance)
	assert.Same(t, instance, StageInstance(2))
}

package commandimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsDefinitions(t *testing.T) {
	f := newFixture(t)

	names := map[string]bool{}
	for _, cmd := range f.cmd.Commands() {
		names[cmd.Name] = true
		assert.NotEmpty(t, cmd.Description, cmd.Name)
	}
	assert.Equal(t, map[string]bool{"tweet": true, "account": true, "org": true, "config": true, "admin": true}, names)
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.cmd.Register(context.Background()))
	assert.Equal(t, testGuild, f.api.guildID)
	assert.Len(t, f.api.registered, 5)
}

func TestRegisterSkippedWithoutAppID(t *testing.T) {
	f := newFixture(t)
	f.cmd.Config.Discord.AppID = ""

	require.NoError(t, f.cmd.Register(context.Background()))
	assert.Nil(t, f.api.registered)
}

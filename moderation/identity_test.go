package moderation

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCurrentMember(t *testing.T) {
	resolver := &IdentityResolver{
		Member: func(guildID, userID string) (*discordgo.Member, error) {
			return &discordgo.Member{User: &discordgo.User{ID: userID, Username: "alice"}}, nil
		},
		User: func(userID string) (*discordgo.User, error) {
			t.Fatal("directory lookup should not run when the member lookup hits")
			return nil, nil
		},
	}

	identity, err := resolver.Resolve("g1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.True(t, identity.InGuild)
	assert.Equal(t, "<@user-1>", identity.Mention())
}

func TestResolveFallsBackToDirectory(t *testing.T) {
	resolver := &IdentityResolver{
		Member: func(guildID, userID string) (*discordgo.Member, error) {
			return nil, errors.New("unknown member")
		},
		User: func(userID string) (*discordgo.User, error) {
			return &discordgo.User{ID: userID, Username: "bob"}, nil
		},
	}

	identity, err := resolver.Resolve("g1", "user-2")
	require.NoError(t, err, "a departed member is an expected, non-error outcome")
	assert.Equal(t, "bob", identity.Username)
	assert.False(t, identity.InGuild)
}

func TestResolveUnresolvable(t *testing.T) {
	resolver := &IdentityResolver{
		Member: func(guildID, userID string) (*discordgo.Member, error) {
			return nil, errors.New("unknown member")
		},
		User: func(userID string) (*discordgo.User, error) {
			return nil, errors.New("unknown user")
		},
	}

	_, err := resolver.Resolve("g1", "user-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityUnresolvable)
	assert.True(t, Unresolvable(err))
}

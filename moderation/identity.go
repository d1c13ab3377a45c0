package moderation

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Identity is the resolved form of a raw user id. InGuild marks whether
// the fast membership lookup succeeded; a former member resolved via
// the user directory has InGuild false.
type Identity struct {
	ID       string
	Username string
	InGuild  bool
}

// Mention returns the Discord mention string for the identity.
func (id Identity) Mention() string {
	return "<@" + id.ID + ">"
}

// IdentityResolver resolves user ids with a two-tier strategy: current
// guild membership first, then the user directory. The lookup functions
// are injected so tests can substitute fakes for a live session.
type IdentityResolver struct {
	Member func(guildID, userID string) (*discordgo.Member, error)
	User   func(userID string) (*discordgo.User, error)
}

// NewIdentityResolver builds a resolver backed by a Discord session.
func NewIdentityResolver(s *discordgo.Session) *IdentityResolver {
	return &IdentityResolver{
		Member: func(guildID, userID string) (*discordgo.Member, error) {
			return s.GuildMember(guildID, userID)
		},
		User: func(userID string) (*discordgo.User, error) {
			return s.User(userID)
		},
	}
}

// Resolve turns a raw id into an Identity. A miss on the membership
// lookup is an expected outcome and falls through to the directory;
// only a directory miss yields ErrIdentityUnresolvable, so callers can
// render an "unknown user" state instead of failing the whole view.
func (r *IdentityResolver) Resolve(guildID, userID string) (Identity, error) {
	if member, err := r.Member(guildID, userID); err == nil && member != nil && member.User != nil {
		return Identity{ID: userID, Username: member.User.Username, InGuild: true}, nil
	}

	user, err := r.User(userID)
	if err != nil || user == nil {
		return Identity{}, fmt.Errorf("%w: user %s", ErrIdentityUnresolvable, userID)
	}
	return Identity{ID: userID, Username: user.Username, InGuild: false}, nil
}

// Unresolvable reports whether err is the identity-unresolvable outcome.
func Unresolvable(err error) bool {
	return errors.Is(err, ErrIdentityUnresolvable)
}

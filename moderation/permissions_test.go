package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testLadder = map[int]string{
	1: "role-support",
	2: "role-junior-mod",
	3: "role-mod",
	5: "role-admin",
	7: "role-owner",
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{"no roles", nil, 0},
		{"unmapped roles only", []string{"role-artist", "role-booster"}, 0},
		{"single mapped role", []string{"role-junior-mod"}, 2},
		{"highest mapped role wins", []string{"role-support", "role-admin", "role-mod"}, 5},
		{"mapped among unmapped", []string{"role-artist", "role-mod"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLevel(tt.roles, testLadder))
		})
	}
}

func TestResolveLevelEmptyLadder(t *testing.T) {
	assert.Equal(t, 0, ResolveLevel([]string{"role-mod"}, nil))
}

func TestAuthorize(t *testing.T) {
	sysAdmins := []string{"sysadmin-1"}

	tests := []struct {
		name     string
		userID   string
		roles    []string
		required int
		want     bool
	}{
		{"level meets requirement", "user-1", []string{"role-mod"}, 3, true},
		{"level exceeds requirement", "user-1", []string{"role-admin"}, 2, true},
		{"level below requirement", "user-1", []string{"role-junior-mod"}, 3, false},
		{"no roles denied", "user-1", nil, 1, false},
		{"sysadmin bypasses mapping", "sysadmin-1", nil, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Authorize(tt.userID, tt.roles, "owner-1", sysAdmins, testLadder, tt.required)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorizeOwnerAlwaysPasses(t *testing.T) {
	// No role mapping at all, still authorized at the maximum level.
	assert.True(t, Authorize("owner-1", nil, "owner-1", nil, nil, 7))
}

package moderation

// contains checks if a slice of strings contains an element.
func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// ResolveLevel returns the highest permission level whose mapped role
// the member holds. A member with no mapped role resolves to 0. It
// never fails.
func ResolveLevel(memberRoleIDs []string, levelRoles map[int]string) int {
	level := 0
	for lvl, roleID := range levelRoles {
		if lvl <= level || roleID == "" {
			continue
		}
		if contains(memberRoleIDs, roleID) {
			level = lvl
		}
	}
	return level
}

// Authorize reports whether the actor may run an operation that
// requires the given level. The guild owner and configured sysadmins
// always pass regardless of role mapping. Callers are expected to stop
// on a false result before touching any state.
func Authorize(userID string, memberRoleIDs []string, guildOwnerID string, sysAdminIDs []string, levelRoles map[int]string, required int) bool {
	if userID != "" && userID == guildOwnerID {
		return true
	}
	if contains(sysAdminIDs, userID) {
		return true
	}
	return ResolveLevel(memberRoleIDs, levelRoles) >= required
}

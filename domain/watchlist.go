package domain

import "slices"

// WatchlistTable maps a guild identifier to the user identifiers monitored
// in that guild. A user appears at most once per guild; slice order only
// affects display. A guild key left behind with an empty slice is valid.
type WatchlistTable map[string][]string

// Contains reports whether userID is monitored in guildID.
func (t WatchlistTable) Contains(guildID, userID string) bool {
	return slices.Contains(t[guildID], userID)
}

// Add inserts userID into the guild set.
// It returns false when the user was already present.
func (t WatchlistTable) Add(guildID, userID string) bool {
	if t.Contains(guildID, userID) {
		return false
	}
	t[guildID] = append(t[guildID], userID)
	return true
}

// Remove deletes userID from the guild set.
// It returns false when the user was not present.
func (t WatchlistTable) Remove(guildID, userID string) bool {
	idx := slices.Index(t[guildID], userID)
	if idx < 0 {
		return false
	}
	t[guildID] = slices.Delete(t[guildID], idx, idx+1)
	return true
}

// Users returns a copy of the guild set, never nil.
func (t WatchlistTable) Users(guildID string) []string {
	users := make([]string, len(t[guildID]))
	copy(users, t[guildID])
	return users
}

// Package pipeline classifies inbound messages and mirrors matches into
// the guild audit channel. It orchestrates without owning domain rules.
package pipeline

import (
	"log/slog"
	"modwatch/services"
)

// Classifier decides whether a message author is monitored in its guild.
// Bot authors and guild-less (direct) messages are never matched, which
// keeps the audit channel from feeding itself. Pure decision, no side
// effects: the platform never needs to be up to test it.
type Classifier struct {
	watchlist services.IWatchlistService
	log       *slog.Logger
}

func NewClassifier(watchlist services.IWatchlistService, log *slog.Logger) Classifier {
	return Classifier{watchlist: watchlist, log: log}
}

func (c Classifier) Classify(guildID, authorID string, authorIsBot bool) bool {
	if authorIsBot || guildID == "" {
		return false
	}
	monitored, err := c.watchlist.IsMonitored(guildID, authorID)
	if err != nil {
		c.log.Warn("Watchlist lookup failed, message treated as unmatched",
			"guild", guildID, "author", authorID, "err", err)
		return false
	}
	return monitored
}

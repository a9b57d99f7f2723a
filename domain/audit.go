package domain

import (
	"github.com/google/uuid"
	"time"
)

// AuditRecord is everything extracted from one flagged message for
// forwarding to the audit channel. Transient: rebuilt per message,
// only the local archive keeps it around.
type AuditRecord struct {
	ID          uuid.UUID
	GuildID     string
	ChannelID   string
	MessageID   string
	Author      User
	Content     string
	Attachments []Attachment
	Permalink   string
	PostedAt    time.Time
}

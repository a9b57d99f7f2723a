package pipeline

import (
	"modwatch/domain"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const fallbackContentType = "application/octet-stream"

// NewAuditRecord extracts the forwarding payload from a flagged message.
func NewAuditRecord(msg domain.Message) domain.AuditRecord {
	return domain.AuditRecord{
		ID:          uuid.New(),
		GuildID:     msg.GuildID,
		ChannelID:   msg.ChannelID,
		MessageID:   msg.ID,
		Author:      msg.Author,
		Content:     msg.Content,
		Attachments: normalizeAttachments(msg.Attachments),
		Permalink:   msg.Permalink,
		PostedAt:    msg.CreatedAt,
	}
}

// normalizeAttachments canonicalizes the content type the platform declared
// for each attachment. Unknown or absent declarations fall back to the
// generic octet-stream; nothing here ever inspects attachment bytes.
func normalizeAttachments(attachments []domain.Attachment) []domain.Attachment {
	if len(attachments) == 0 {
		return nil
	}
	return lo.Map(attachments, func(att domain.Attachment, _ int) domain.Attachment {
		declared := strings.TrimSpace(att.ContentType)
		base, _, _ := strings.Cut(declared, ";")
		base = strings.TrimSpace(base)
		switch {
		case mimetype.Lookup(declared) != nil:
			att.ContentType = declared
		case mimetype.Lookup(base) != nil:
			att.ContentType = base
		default:
			att.ContentType = fallbackContentType
		}
		return att
	})
}

package platform

import (
	"fmt"
	"modwatch/domain"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Embed colors, platform-side hex values per reply tone.
var toneColors = map[domain.Tone]int{
	domain.ToneSuccess: 0x2ecc71,
	domain.ToneWarning: 0xe67e22,
	domain.ToneError:   0xe74c3c,
	domain.ToneInfo:    0x3498db,
}

const auditColor = 0xe74c3c

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embedAuthor struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
}

type embedPayload struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Author      *embedAuthor `json:"author,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type messagePayload struct {
	Embed embedPayload `json:"embed"`
}

// auditEmbed renders a flagged message the way moderators expect to read
// it: author identity up top, context and jump link in the fields.
func auditEmbed(record domain.AuditRecord) messagePayload {
	description := record.Content
	if description == "" {
		description = "*No text content*"
	}
	fields := []embedField{
		{Name: "Channel", Value: fmt.Sprintf("<#%s>", record.ChannelID), Inline: true},
		{Name: "Message ID", Value: record.MessageID, Inline: true},
	}
	if len(record.Attachments) > 0 {
		links := lo.Map(record.Attachments, func(att domain.Attachment, _ int) string {
			return fmt.Sprintf("[%s](%s)", att.Filename, att.URL)
		})
		fields = append(fields, embedField{Name: "Attachments", Value: strings.Join(links, "\n")})
	}
	if record.Permalink != "" {
		fields = append(fields, embedField{Name: "Jump to Message", Value: fmt.Sprintf("[Click here](%s)", record.Permalink), Inline: true})
	}
	return messagePayload{Embed: embedPayload{
		Title:       "Monitored Message",
		Description: description,
		Color:       auditColor,
		Author: &embedAuthor{
			Name:    fmt.Sprintf("%s (%s)", record.Author.Name, record.Author.ID),
			IconURL: record.Author.AvatarURL,
		},
		Fields:    fields,
		Timestamp: record.PostedAt.UTC().Format(time.RFC3339),
	}}
}

func replyEmbed(reply domain.Reply) messagePayload {
	return messagePayload{Embed: embedPayload{
		Title:       reply.Title,
		Description: reply.Description,
		Color:       toneColors[reply.Tone],
		Fields: lo.Map(reply.Fields, func(field domain.ReplyField, _ int) embedField {
			return embedField{Name: field.Name, Value: field.Value, Inline: true}
		}),
	}}
}

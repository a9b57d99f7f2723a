package platform

import (
	"encoding/json"
	"log/slog"
	"modwatch/commands"
	"modwatch/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// Webhook receives platform event callbacks and feeds them to the runtime
// without blocking: the platform expects an answer fast, so a full buffer
// drops the event with a warning instead of stalling the request.
type Webhook struct {
	messages    chan<- domain.Message
	invocations chan<- commands.Invocation
	log         *slog.Logger
}

func NewWebhook(messages chan<- domain.Message, invocations chan<- commands.Invocation, log *slog.Logger) *Webhook {
	return &Webhook{messages: messages, invocations: invocations, log: log}
}

func (w *Webhook) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/events/message", w.handleMessage)
	r.Post("/events/command", w.handleCommand)
	return r
}

type inboundAttachment struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
}

type inboundMessage struct {
	ID          string              `json:"id"`
	GuildID     string              `json:"guild_id,omitempty"`
	ChannelID   string              `json:"channel_id"`
	Author      userPayload         `json:"author"`
	Content     string              `json:"content,omitempty"`
	Attachments []inboundAttachment `json:"attachments,omitempty"`
	Permalink   string              `json:"permalink,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type inboundCommand struct {
	Name      string       `json:"name"`
	GuildID   string       `json:"guild_id"`
	ChannelID string       `json:"channel_id"`
	ActorID   string       `json:"actor_id"`
	UserID    string       `json:"user_id,omitempty"`
	User      *userPayload `json:"user,omitempty"`
}

func (w *Webhook) handleMessage(rw http.ResponseWriter, r *http.Request) {
	var payload inboundMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(rw, "malformed message event", http.StatusBadRequest)
		return
	}
	select {
	case w.messages <- toMessage(payload):
		rw.WriteHeader(http.StatusAccepted)
	default:
		w.log.Warn("Inbound message buffer full, dropping event", "message", payload.ID)
		rw.WriteHeader(http.StatusServiceUnavailable)
	}
}

func (w *Webhook) handleCommand(rw http.ResponseWriter, r *http.Request) {
	var payload inboundCommand
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(rw, "malformed command event", http.StatusBadRequest)
		return
	}
	select {
	case w.invocations <- toInvocation(payload):
		rw.WriteHeader(http.StatusAccepted)
	default:
		w.log.Warn("Invocation buffer full, dropping command", "name", payload.Name)
		rw.WriteHeader(http.StatusServiceUnavailable)
	}
}

func toMessage(payload inboundMessage) domain.Message {
	return domain.Message{
		ID:        payload.ID,
		GuildID:   payload.GuildID,
		ChannelID: payload.ChannelID,
		Author: domain.User{
			ID:        payload.Author.ID,
			Name:      payload.Author.Name,
			AvatarURL: payload.Author.AvatarURL,
			Bot:       payload.Author.Bot,
		},
		Content: payload.Content,
		Attachments: lo.Map(payload.Attachments, func(att inboundAttachment, _ int) domain.Attachment {
			return domain.Attachment{Filename: att.Filename, URL: att.URL, ContentType: att.ContentType}
		}),
		Permalink: payload.Permalink,
		CreatedAt: payload.CreatedAt,
	}
}

func toInvocation(payload inboundCommand) commands.Invocation {
	inv := commands.Invocation{
		Name: payload.Name,
		Request: commands.Request{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			ActorID:   payload.ActorID,
		},
		UserID: payload.UserID,
	}
	if payload.User != nil {
		inv.User = &domain.User{
			ID:        payload.User.ID,
			Name:      payload.User.Name,
			AvatarURL: payload.User.AvatarURL,
			Bot:       payload.User.Bot,
		}
	}
	return inv
}

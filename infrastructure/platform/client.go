// Package platform adapts the chat platform's HTTP surface: a REST client
// for outbound calls and a webhook server for inbound events. Connection
// lifecycle and authentication refresh stay on the platform side.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"modwatch/domain"
	"modwatch/errors"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
)

const requestTimeout = 10 * time.Second

// Client implements contract.Gateway against the platform REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, token string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

type channelPayload struct {
	ID      string `json:"id"`
	GuildID string `json:"guild_id"`
	Name    string `json:"name"`
	Topic   string `json:"topic,omitempty"`
}

type userPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bot       bool   `json:"bot,omitempty"`
}

func (c *Client) FindChannelByName(ctx context.Context, guildID, name string) (domain.Channel, error) {
	var channels []channelPayload
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/guilds/%s/channels", guildID), nil, &channels); err != nil {
		return domain.Channel{}, err
	}
	found, ok := lo.Find(channels, func(ch channelPayload) bool { return ch.Name == name })
	if !ok {
		return domain.Channel{}, fmt.Errorf("%w: %q in guild %s", errors.ErrChannelNotFound, name, guildID)
	}
	return toChannel(found, guildID), nil
}

func (c *Client) CreateChannel(ctx context.Context, guildID, name, topic string) (domain.Channel, error) {
	body := map[string]string{"name": name, "topic": topic}
	var created channelPayload
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/guilds/%s/channels", guildID), body, &created)
	if err != nil {
		if isStatus(err, http.StatusForbidden) {
			return domain.Channel{}, fmt.Errorf("%w: %q in guild %s", errors.ErrCreationDenied, name, guildID)
		}
		return domain.Channel{}, err
	}
	return toChannel(created, guildID), nil
}

func (c *Client) SendAudit(ctx context.Context, channelID string, record domain.AuditRecord) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/channels/%s/messages", channelID), auditEmbed(record), nil)
}

func (c *Client) SendReply(ctx context.Context, channelID string, reply domain.Reply) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/channels/%s/messages", channelID), replyEmbed(reply), nil)
}

func (c *Client) FetchUser(ctx context.Context, userID string) (domain.User, error) {
	var user userPayload
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%s", userID), nil, &user); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return domain.User{}, fmt.Errorf("%w: %s", errors.ErrLookupFailed, userID)
		}
		return domain.User{}, err
	}
	return domain.User{ID: user.ID, Name: user.Name, AvatarURL: user.AvatarURL, Bot: user.Bot}, nil
}

// statusError keeps the HTTP status reachable through errors.As without
// leaking net/http types into callers.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("platform returned %d: %s", e.status, e.body)
}

func isStatus(err error, status int) bool {
	var se *statusError
	return stderrors.As(err, &se) && se.status == status
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %w", method, path, &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(raw))})
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func toChannel(payload channelPayload, guildID string) domain.Channel {
	if payload.GuildID == "" {
		payload.GuildID = guildID
	}
	return domain.Channel{ID: payload.ID, GuildID: payload.GuildID, Name: payload.Name, Topic: payload.Topic}
}

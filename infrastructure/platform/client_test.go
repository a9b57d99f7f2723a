package platform

import (
	"context"
	"encoding/json"
	"log/slog"
	"modwatch/domain"
	"modwatch/errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Find_Channel_By_Name(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodGet, r.Method)
		req.Equal("/guilds/100/channels", r.URL.Path)
		req.Equal("Bot s3cret", r.Header.Get("Authorization"))
		json.NewEncoder(rw).Encode([]channelPayload{
			{ID: "8001", Name: "general"},
			{ID: "9001", Name: "tracked-users", Topic: "Messages from monitored users"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "s3cret", slog.Default())
	channel, err := client.FindChannelByName(context.Background(), "100", "tracked-users")
	req.NoError(err)
	req.Equal(domain.Channel{ID: "9001", GuildID: "100", Name: "tracked-users", Topic: "Messages from monitored users"}, channel)

	_, err = client.FindChannelByName(context.Background(), "100", "missing")
	req.ErrorIs(err, errors.ErrChannelNotFound)
}

func Test_Create_Channel(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/guilds/100/channels", r.URL.Path)
		var body map[string]string
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("tracked-users", body["name"])
		json.NewEncoder(rw).Encode(channelPayload{ID: "9001", GuildID: "100", Name: body["name"], Topic: body["topic"]})
	}))
	defer server.Close()

	client := NewClient(server.URL, "s3cret", slog.Default())
	channel, err := client.CreateChannel(context.Background(), "100", "tracked-users", "watching")
	req.NoError(err)
	req.Equal("9001", channel.ID)
	req.Equal("watching", channel.Topic)
}

func Test_Create_Channel_Forbidden_Means_Creation_Denied(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, "missing manage channels permission", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "s3cret", slog.Default())
	_, err := client.CreateChannel(context.Background(), "100", "tracked-users", "")
	req.ErrorIs(err, errors.ErrCreationDenied)
}

func Test_Fetch_User(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/123456789012345678" {
			json.NewEncoder(rw).Encode(userPayload{ID: "123456789012345678", Name: "Alice"})
			return
		}
		http.NotFound(rw, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, "s3cret", slog.Default())
	user, err := client.FetchUser(context.Background(), "123456789012345678")
	req.NoError(err)
	req.Equal("Alice", user.Name)

	_, err = client.FetchUser(context.Background(), "876543210987654321")
	req.ErrorIs(err, errors.ErrLookupFailed)
}

func Test_Send_Audit_Posts_Embed(t *testing.T) {
	req := require.New(t)
	var posted messagePayload
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		req.Equal("/channels/9001/messages", r.URL.Path)
		req.NoError(json.NewDecoder(r.Body).Decode(&posted))
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	record := domain.AuditRecord{
		ID:        uuid.New(),
		GuildID:   "100",
		ChannelID: "8001",
		MessageID: "42",
		Author:    domain.User{ID: "123456789012345678", Name: "Alice"},
		Content:   "hello",
		Permalink: "https://chat.example/100/8001/42",
		PostedAt:  time.Now().UTC(),
	}
	client := NewClient(server.URL, "s3cret", slog.Default())
	req.NoError(client.SendAudit(context.Background(), "9001", record))

	req.Equal("Monitored Message", posted.Embed.Title)
	req.Equal("hello", posted.Embed.Description)
	req.Equal("Alice (123456789012345678)", posted.Embed.Author.Name)
}

func Test_Send_Reply_Failure_Surfaces_Status(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, "internal", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "s3cret", slog.Default())
	err := client.SendReply(context.Background(), "8001", domain.Reply{Title: "hi"})
	req.Error(err)
	req.True(isStatus(err, http.StatusInternalServerError))
}

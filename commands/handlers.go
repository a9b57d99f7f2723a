// Package commands implements the moderation command surface. Argument
// parsing and the permission gate live upstream in the platform front end;
// handlers receive already-resolved identifiers and render replies.
package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"modwatch/contract"
	"modwatch/domain"
	"modwatch/errors"
	"modwatch/services"
	"strings"

	"github.com/samber/lo"
)

// Request carries the resolved context of one command invocation.
type Request struct {
	GuildID   string
	ChannelID string
	ActorID   string
}

// Invocation is one routed command with its resolved arguments.
// User is set when the platform already resolved a mention; UserID alone
// means the actor passed a raw identifier.
type Invocation struct {
	Name    string
	Request Request
	UserID  string
	User    *domain.User
}

type Handler struct {
	watchlist services.IWatchlistService
	gateway   contract.Gateway
	log       *slog.Logger
}

func NewHandler(watchlist services.IWatchlistService, gateway contract.Gateway, log *slog.Logger) Handler {
	return Handler{watchlist: watchlist, gateway: gateway, log: log}
}

// Monitor starts monitoring a user the platform already resolved.
func (h Handler) Monitor(ctx context.Context, req Request, user domain.User) error {
	return h.add(ctx, req, user)
}

// MonitorByID starts monitoring a user by raw identifier. The user is
// looked up for display only; an unresolvable id still gets monitored.
func (h Handler) MonitorByID(ctx context.Context, req Request, userID string) error {
	return h.add(ctx, req, h.describeUser(ctx, userID))
}

// Unmonitor stops monitoring a resolved user.
func (h Handler) Unmonitor(ctx context.Context, req Request, user domain.User) error {
	return h.remove(ctx, req, user)
}

// UnmonitorByID stops monitoring a user by raw identifier.
func (h Handler) UnmonitorByID(ctx context.Context, req Request, userID string) error {
	return h.remove(ctx, req, h.describeUser(ctx, userID))
}

func (h Handler) add(ctx context.Context, req Request, user domain.User) error {
	outcome, err := h.watchlist.Add(req.GuildID, user.ID)
	switch {
	case stderrors.Is(err, errors.ErrInvalidIdentifier):
		return h.send(ctx, req, domain.Reply{
			Title:       "Invalid User ID",
			Description: "Provide a numeric platform user id of 17 to 20 digits.",
			Tone:        domain.ToneError,
		})
	case stderrors.Is(err, errors.ErrPersistenceFailure):
		// Mutation applied in memory; the actor must know durability is uncertain.
		h.log.Warn("Watchlist save failed after add", "guild", req.GuildID, "user", user.ID, "err", err)
		return h.send(ctx, req, domain.Reply{
			Title:       "Monitoring Started (save uncertain)",
			Description: fmt.Sprintf("%s is being monitored, but the watchlist could not be saved. The entry may be lost on restart.", display(user)),
			Tone:        domain.ToneWarning,
		})
	case err != nil:
		return err
	case outcome == services.AlreadyPresent:
		return h.send(ctx, req, domain.Reply{
			Title:       "Already Monitored",
			Description: fmt.Sprintf("%s is already being monitored.", display(user)),
			Tone:        domain.ToneWarning,
		})
	default:
		return h.send(ctx, req, domain.Reply{
			Title:       "User Monitoring Started",
			Description: fmt.Sprintf("%s is now being monitored.", display(user)),
			Tone:        domain.ToneSuccess,
			Fields: []domain.ReplyField{
				{Name: "User ID", Value: user.ID},
				{Name: "Added by", Value: req.ActorID},
			},
		})
	}
}

func (h Handler) remove(ctx context.Context, req Request, user domain.User) error {
	outcome, err := h.watchlist.Remove(req.GuildID, user.ID)
	switch {
	case stderrors.Is(err, errors.ErrInvalidIdentifier):
		return h.send(ctx, req, domain.Reply{
			Title:       "Invalid User ID",
			Description: "Provide a numeric platform user id of 17 to 20 digits.",
			Tone:        domain.ToneError,
		})
	case stderrors.Is(err, errors.ErrPersistenceFailure):
		h.log.Warn("Watchlist save failed after remove", "guild", req.GuildID, "user", user.ID, "err", err)
		return h.send(ctx, req, domain.Reply{
			Title:       "Monitoring Stopped (save uncertain)",
			Description: fmt.Sprintf("%s is no longer monitored, but the watchlist could not be saved.", display(user)),
			Tone:        domain.ToneWarning,
		})
	case err != nil:
		return err
	case outcome == services.NotPresent:
		return h.send(ctx, req, domain.Reply{
			Title:       "Not Monitored",
			Description: fmt.Sprintf("%s was not being monitored.", display(user)),
			Tone:        domain.ToneWarning,
		})
	default:
		return h.send(ctx, req, domain.Reply{
			Title:       "User Monitoring Stopped",
			Description: fmt.Sprintf("%s is no longer being monitored.", display(user)),
			Tone:        domain.ToneSuccess,
			Fields: []domain.ReplyField{
				{Name: "User ID", Value: user.ID},
				{Name: "Removed by", Value: req.ActorID},
			},
		})
	}
}

// Monitored lists every monitored user of the guild.
func (h Handler) Monitored(ctx context.Context, req Request) error {
	userIDs, err := h.watchlist.List(req.GuildID)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return h.send(ctx, req, domain.Reply{
			Title:       "Monitored Users",
			Description: "No users are currently being monitored in this server.",
			Tone:        domain.ToneInfo,
		})
	}

	lines := lo.Map(userIDs, func(userID string, _ int) string {
		return fmt.Sprintf("%s (`%s`)", display(h.describeUser(ctx, userID)), userID)
	})
	return h.send(ctx, req, domain.Reply{
		Title:       "Monitored Users",
		Description: strings.Join(lines, "\n"),
		Tone:        domain.ToneInfo,
		Fields: []domain.ReplyField{
			{Name: "Total Count", Value: fmt.Sprintf("%d", len(userIDs))},
		},
	})
}

// Help describes the command surface.
func (h Handler) Help(ctx context.Context, req Request) error {
	return h.send(ctx, req, domain.Reply{
		Title:       "Moderation Bot Commands",
		Description: "Commands for monitoring users and managing the watchlist",
		Tone:        domain.ToneInfo,
		Fields: []domain.ReplyField{
			{Name: "monitor @user", Value: "Start monitoring a mentioned user"},
			{Name: "monitor_id <user_id>", Value: "Start monitoring a user by id"},
			{Name: "unmonitor @user", Value: "Stop monitoring a mentioned user"},
			{Name: "unmonitor_id <user_id>", Value: "Stop monitoring a user by id"},
			{Name: "monitored", Value: "Show all currently monitored users"},
			{Name: "commands", Value: "Show this help message"},
		},
	})
}

// describeUser resolves a user for display. When the platform cannot
// resolve the id the command proceeds with a placeholder; a stale or
// deleted account is no reason to fail a moderation command.
func (h Handler) describeUser(ctx context.Context, userID string) domain.User {
	user, err := h.gateway.FetchUser(ctx, userID)
	if err != nil {
		h.log.Debug("User lookup failed, using placeholder", "user", userID, "err", err)
		return domain.User{ID: userID, Name: "Unknown User"}
	}
	return user
}

func (h Handler) send(ctx context.Context, req Request, reply domain.Reply) error {
	return h.gateway.SendReply(ctx, req.ChannelID, reply)
}

func display(user domain.User) string {
	if user.Name == "" {
		return fmt.Sprintf("<@%s>", user.ID)
	}
	return user.Name
}

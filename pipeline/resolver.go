package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"modwatch/contract"
	"modwatch/domain"
	"modwatch/errors"
)

// ChannelResolver finds or provisions the per-guild audit channel.
// The channel is identified by a fixed well-known name, never cached:
// every flagged message resolves it again, so provisioning stays
// idempotent at the platform level by naming convention.
type ChannelResolver struct {
	gateway contract.Gateway
	name    string
	topic   string
	log     *slog.Logger
}

func NewChannelResolver(gateway contract.Gateway, name, topic string, log *slog.Logger) ChannelResolver {
	return ChannelResolver{gateway: gateway, name: name, topic: topic, log: log}
}

// Resolve returns the guild audit channel, creating it on first need.
// When the platform denies creation the caller gets ErrSinkUnavailable and
// must degrade gracefully; nothing is raised to the message author.
func (r ChannelResolver) Resolve(ctx context.Context, guildID string) (domain.Channel, error) {
	channel, err := r.gateway.FindChannelByName(ctx, guildID, r.name)
	if err == nil {
		return channel, nil
	}
	if !stderrors.Is(err, errors.ErrChannelNotFound) {
		return domain.Channel{}, fmt.Errorf("%w: %v", errors.ErrSinkUnavailable, err)
	}

	created, createErr := r.gateway.CreateChannel(ctx, guildID, r.name, r.topic)
	if createErr == nil {
		r.log.Info("Audit channel provisioned", "guild", guildID, "channel", created.ID)
		return created, nil
	}
	if stderrors.Is(createErr, errors.ErrCreationDenied) {
		return domain.Channel{}, fmt.Errorf("%w: %v", errors.ErrSinkUnavailable, createErr)
	}

	// A concurrent resolve may have won a create-create race on the
	// platform side; look the name up once more before giving up.
	channel, err = r.gateway.FindChannelByName(ctx, guildID, r.name)
	if err == nil {
		return channel, nil
	}
	return domain.Channel{}, fmt.Errorf("%w: %v", errors.ErrSinkUnavailable, createErr)
}

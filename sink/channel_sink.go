package sink

import (
	"context"
	"fmt"
	"log/slog"
	"modwatch/contract"
	"modwatch/domain"
	"modwatch/errors"
	"modwatch/pipeline"
)

// ChannelSink mirrors audit records into the guild audit channel,
// resolving (and on first need provisioning) the channel each time.
type ChannelSink struct {
	resolver pipeline.ChannelResolver
	gateway  contract.Gateway
	log      *slog.Logger
}

func NewChannelSink(resolver pipeline.ChannelResolver, gateway contract.Gateway, log *slog.Logger) ChannelSink {
	return ChannelSink{resolver: resolver, gateway: gateway, log: log}
}

func (s ChannelSink) Consume(ctx context.Context, record domain.AuditRecord) error {
	channel, err := s.resolver.Resolve(ctx, record.GuildID)
	if err != nil {
		return err
	}
	if err := s.gateway.SendAudit(ctx, channel.ID, record); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDeliveryFailed, err)
	}
	return nil
}

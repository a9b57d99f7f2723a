package pipeline

import (
	"context"
	stderrors "errors"
	"log/slog"
	"modwatch/contract"
	"modwatch/domain"
	"modwatch/errors"
	"modwatch/observability"
)

// Outcome is the terminal state of one message's trip through the pipeline.
type Outcome string

const (
	OutcomeIgnored         Outcome = "ignored"
	OutcomeNotMatched      Outcome = "not_matched"
	OutcomeSinkUnavailable Outcome = "sink_unavailable"
	OutcomeDelivered       Outcome = "delivered"
	OutcomeDeliveryFailed  Outcome = "delivery_failed"
)

// Pipeline runs every inbound message through classification and, on a
// match, mirrors it to the audit sinks. Every failure is contained here:
// whatever happens to the audit path, the message keeps flowing to normal
// command handling and the event loop stays alive.
type Pipeline struct {
	classifier Classifier
	delivery   contract.AuditSink
	archives   []contract.AuditSink
	stats      *observability.Manager
	log        *slog.Logger
}

func NewPipeline(
	classifier Classifier,
	delivery contract.AuditSink,
	stats *observability.Manager,
	log *slog.Logger,
	archives ...contract.AuditSink,
) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		delivery:   delivery,
		archives:   archives,
		stats:      stats,
		log:        log,
	}
}

// Handle classifies one message and forwards a record of it on a match.
// Terminal in one pass; never panics out, never retries.
func (p *Pipeline) Handle(ctx context.Context, msg domain.Message) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("Audit path panicked, message ignored by audit only",
				"message", msg.ID, "panic", r)
			out = OutcomeDeliveryFailed
		}
	}()

	p.stats.IncrMessagesSeen()
	if msg.Author.Bot || msg.GuildID == "" {
		return OutcomeIgnored
	}
	if !p.classifier.Classify(msg.GuildID, msg.Author.ID, msg.Author.Bot) {
		return OutcomeNotMatched
	}
	p.stats.IncrMatched()

	record := NewAuditRecord(msg)
	for _, archive := range p.archives {
		if err := archive.Consume(ctx, record); err != nil {
			p.log.Warn("Audit archive failed", "message", msg.ID, "err", err)
		}
	}

	if err := p.delivery.Consume(ctx, record); err != nil {
		if stderrors.Is(err, errors.ErrSinkUnavailable) {
			p.stats.IncrSinkFailures()
			p.log.Warn("Audit channel unavailable, message not mirrored",
				"guild", msg.GuildID, "err", err)
			return OutcomeSinkUnavailable
		}
		p.stats.IncrDeliveryFailed()
		p.log.Warn("Audit delivery failed, not retrying",
			"guild", msg.GuildID, "message", msg.ID, "err", err)
		return OutcomeDeliveryFailed
	}
	p.stats.IncrDelivered()
	return OutcomeDelivered
}

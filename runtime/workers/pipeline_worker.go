package workers

import (
	"context"
	"log/slog"
	"modwatch/domain"
	"modwatch/pipeline"
)

// MessageForwarder hands a message onward to the command front end.
// It runs after the audit path regardless of its outcome: audit logging
// never blocks or suppresses normal command handling.
type MessageForwarder func(ctx context.Context, msg domain.Message)

// PipelineWorker is the single consumer of the inbound message stream.
// Messages are handled one at a time, so there is never more than one
// audit cycle mutating shared state at once.
type PipelineWorker struct {
	pipeline *pipeline.Pipeline
	messages <-chan domain.Message
	forward  MessageForwarder
	log      *slog.Logger
}

func NewPipelineWorker(
	p *pipeline.Pipeline,
	messages <-chan domain.Message,
	forward MessageForwarder,
	log *slog.Logger,
) *PipelineWorker {
	return &PipelineWorker{pipeline: p, messages: messages, forward: forward, log: log}
}

func (w PipelineWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case msg, ok := <-w.messages:
			if !ok {
				w.log.Debug("Message channel is closed")
				return nil
			}
			outcome := w.pipeline.Handle(ctx, msg)
			w.log.Debug("Message processed", "message", msg.ID, "outcome", string(outcome))
			if w.forward != nil {
				w.forward(ctx, msg)
			}
		}
	}
}

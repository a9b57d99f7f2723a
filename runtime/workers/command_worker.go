package workers

import (
	"context"
	"fmt"
	"log/slog"
	"modwatch/commands"
)

// CommandWorker consumes resolved command invocations and routes them to
// the handlers. Handler failures are logged and the loop keeps going; a
// broken command must never stall event processing.
type CommandWorker struct {
	handler     commands.Handler
	invocations <-chan commands.Invocation
	log         *slog.Logger
}

func NewCommandWorker(handler commands.Handler, invocations <-chan commands.Invocation, log *slog.Logger) *CommandWorker {
	return &CommandWorker{handler: handler, invocations: invocations, log: log}
}

func (w CommandWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case inv, ok := <-w.invocations:
			if !ok {
				w.log.Debug("Invocation channel is closed")
				return nil
			}
			if err := w.route(ctx, inv); err != nil {
				w.log.Warn("Command failed", "name", inv.Name, "guild", inv.Request.GuildID, "err", err)
			}
		}
	}
}

func (w CommandWorker) route(ctx context.Context, inv commands.Invocation) error {
	switch inv.Name {
	case "monitor":
		if inv.User != nil {
			return w.handler.Monitor(ctx, inv.Request, *inv.User)
		}
		return w.handler.MonitorByID(ctx, inv.Request, inv.UserID)
	case "monitor_id":
		return w.handler.MonitorByID(ctx, inv.Request, inv.UserID)
	case "unmonitor":
		if inv.User != nil {
			return w.handler.Unmonitor(ctx, inv.Request, *inv.User)
		}
		return w.handler.UnmonitorByID(ctx, inv.Request, inv.UserID)
	case "unmonitor_id":
		return w.handler.UnmonitorByID(ctx, inv.Request, inv.UserID)
	case "monitored":
		return w.handler.Monitored(ctx, inv.Request)
	case "commands":
		return w.handler.Help(ctx, inv.Request)
	default:
		return fmt.Errorf("unknown command %q", inv.Name)
	}
}

package workers

import (
	"context"
	"log/slog"
	"modwatch/observability"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker logs process health and pipeline counters on a ticker.
type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.Manager
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitoring *observability.Manager, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.monitoring.GetLatest()
			w.log.Info("Heartbeat",
				"pid", os.Getpid(),
				"status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"messages_seen", stats.MessagesSeen,
				"matched", stats.Matched,
				"delivered", stats.Delivered,
				"delivery_failed", stats.DeliveryFailed,
				"sink_failures", stats.SinkFailures,
				"alloc_mem_mb", stats.AllocMemMb,
			)
		}
	}
}

// getSelfStats retrieves technical metrics (memory, CPU, OS status) for the
// bot's own process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}

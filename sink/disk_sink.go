package sink

import (
	"context"
	"log/slog"
	"modwatch/domain"
	"modwatch/repositories"
)

// DiskSink archives every audit record locally so the viewer can report
// history without asking the platform.
type DiskSink struct {
	repository repositories.IAuditRepository
	log        *slog.Logger
}

func NewDiskSink(repository repositories.IAuditRepository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Consume(_ context.Context, record domain.AuditRecord) error {
	return d.repository.StoreRecord(record)
}

//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"modwatch/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the
// Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Gateway is the outbound surface of the chat platform. Connection and
// authentication live behind it; the bot only issues these calls.
type Gateway interface {
	FindChannelByName(ctx context.Context, guildID, name string) (domain.Channel, error)
	CreateChannel(ctx context.Context, guildID, name, topic string) (domain.Channel, error)
	SendAudit(ctx context.Context, channelID string, record domain.AuditRecord) error
	SendReply(ctx context.Context, channelID string, reply domain.Reply) error
	FetchUser(ctx context.Context, userID string) (domain.User, error)
}

// AuditSink receives the record built for one flagged message.
type AuditSink interface {
	Consume(ctx context.Context, record domain.AuditRecord) error
}

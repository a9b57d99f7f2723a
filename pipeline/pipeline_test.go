package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"modwatch/domain"
	"modwatch/errors"
	"modwatch/mocks"
	"modwatch/observability"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func flaggedMessage() domain.Message {
	return domain.Message{
		ID:        "42",
		GuildID:   "100",
		ChannelID: "9001",
		Author:    domain.User{ID: "123456789012345678", Name: "Alice"},
		Content:   "hello",
		CreatedAt: time.Now().UTC(),
	}
}

func matchingClassifier(ctrl *gomock.Controller) Classifier {
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	watchlistMock.EXPECT().IsMonitored(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	return NewClassifier(watchlistMock, slog.Default())
}

func Test_Handle_Delivers_Matched_Message(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	deliveryMock := mocks.NewMockAuditSink(ctrl)

	var delivered domain.AuditRecord
	deliveryMock.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.AuditRecord) error {
			delivered = record
			return nil
		}).
		Times(1)

	stats := observability.NewManager()
	p := NewPipeline(matchingClassifier(ctrl), deliveryMock, stats, slog.Default())

	outcome := p.Handle(context.Background(), flaggedMessage())
	req.Equal(OutcomeDelivered, outcome)
	req.Equal("42", delivered.MessageID)
	req.Equal(uint64(1), stats.GetLatest().MessagesSeen)
	req.Equal(uint64(1), stats.GetLatest().Matched)
	req.Equal(uint64(1), stats.GetLatest().Delivered)
}

func Test_Handle_Ignores_Bot_Messages(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	deliveryMock := mocks.NewMockAuditSink(ctrl)
	deliveryMock.EXPECT().Consume(gomock.Any(), gomock.Any()).Times(0)

	p := NewPipeline(matchingClassifier(ctrl), deliveryMock, observability.NewManager(), slog.Default())

	msg := flaggedMessage()
	msg.Author.Bot = true
	req.Equal(OutcomeIgnored, p.Handle(context.Background(), msg))

	msg = flaggedMessage()
	msg.GuildID = ""
	req.Equal(OutcomeIgnored, p.Handle(context.Background(), msg))
}

func Test_Handle_Skips_Unmatched_Messages(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	watchlistMock.EXPECT().IsMonitored("100", "123456789012345678").Return(false, nil)
	deliveryMock := mocks.NewMockAuditSink(ctrl)
	deliveryMock.EXPECT().Consume(gomock.Any(), gomock.Any()).Times(0)

	p := NewPipeline(NewClassifier(watchlistMock, slog.Default()), deliveryMock, observability.NewManager(), slog.Default())
	req.Equal(OutcomeNotMatched, p.Handle(context.Background(), flaggedMessage()))
}

func Test_Handle_Degrades_When_Sink_Unavailable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	deliveryMock := mocks.NewMockAuditSink(ctrl)
	deliveryMock.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: creation denied", errors.ErrSinkUnavailable))

	stats := observability.NewManager()
	p := NewPipeline(matchingClassifier(ctrl), deliveryMock, stats, slog.Default())

	outcome := p.Handle(context.Background(), flaggedMessage())
	req.Equal(OutcomeSinkUnavailable, outcome)
	req.Equal(uint64(1), stats.GetLatest().SinkFailures)
	req.Equal(uint64(0), stats.GetLatest().Delivered)
}

func Test_Handle_Reports_Delivery_Failure_Without_Retry(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	deliveryMock := mocks.NewMockAuditSink(ctrl)
	deliveryMock.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: 500", errors.ErrDeliveryFailed)).
		Times(1)

	stats := observability.NewManager()
	p := NewPipeline(matchingClassifier(ctrl), deliveryMock, stats, slog.Default())

	req.Equal(OutcomeDeliveryFailed, p.Handle(context.Background(), flaggedMessage()))
	req.Equal(uint64(1), stats.GetLatest().DeliveryFailed)
}

func Test_Handle_Tolerates_Archive_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	deliveryMock := mocks.NewMockAuditSink(ctrl)
	deliveryMock.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	archiveMock := mocks.NewMockAuditSink(ctrl)
	archiveMock.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))

	p := NewPipeline(matchingClassifier(ctrl), deliveryMock, observability.NewManager(), slog.Default(), archiveMock)
	req.Equal(OutcomeDelivered, p.Handle(context.Background(), flaggedMessage()))
}

func Test_Handle_Contains_Panics(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	deliveryMock := mocks.NewMockAuditSink(ctrl)
	deliveryMock.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.AuditRecord) error {
			panic("boom")
		})

	p := NewPipeline(matchingClassifier(ctrl), deliveryMock, observability.NewManager(), slog.Default())
	req.NotPanics(func() {
		req.Equal(OutcomeDeliveryFailed, p.Handle(context.Background(), flaggedMessage()))
	})
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"modwatch/domain"
	"modwatch/errors"
	"modwatch/mocks"
	"modwatch/services"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testRequest = Request{GuildID: "100", ChannelID: "8001", ActorID: "999999999999999999"}

type replySink struct {
	replies []domain.Reply
}

func (r *replySink) capture(gatewayMock *mocks.MockGateway) {
	gatewayMock.EXPECT().
		SendReply(gomock.Any(), testRequest.ChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, reply domain.Reply) error {
			r.replies = append(r.replies, reply)
			return nil
		}).
		AnyTimes()
}

func Test_Monitor_Replies_With_Confirmation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	user := domain.User{ID: "123456789012345678", Name: "Alice"}
	watchlistMock.EXPECT().Add("100", user.ID).Return(services.Added, nil)

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Monitor(context.Background(), testRequest, user))

	req.Len(sink.replies, 1)
	reply := sink.replies[0]
	req.Equal("User Monitoring Started", reply.Title)
	req.Equal(domain.ToneSuccess, reply.Tone)
	req.Contains(reply.Description, "Alice")
	req.Equal([]domain.ReplyField{
		{Name: "User ID", Value: user.ID},
		{Name: "Added by", Value: testRequest.ActorID},
	}, reply.Fields)
}

func Test_Monitor_Warns_When_Already_Present(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	user := domain.User{ID: "123456789012345678", Name: "Alice"}
	watchlistMock.EXPECT().Add("100", user.ID).Return(services.AlreadyPresent, nil)

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Monitor(context.Background(), testRequest, user))

	req.Len(sink.replies, 1)
	req.Equal("Already Monitored", sink.replies[0].Title)
	req.Equal(domain.ToneWarning, sink.replies[0].Tone)
}

func Test_Monitor_By_ID_Rejects_Malformed_Identifier(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	gatewayMock.EXPECT().
		FetchUser(gomock.Any(), "abc").
		Return(domain.User{}, fmt.Errorf("%w: abc", errors.ErrLookupFailed))
	watchlistMock.EXPECT().
		Add("100", "abc").
		Return(services.AddOutcome(""), fmt.Errorf("%w: not a snowflake", errors.ErrInvalidIdentifier))

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.MonitorByID(context.Background(), testRequest, "abc"))

	req.Len(sink.replies, 1)
	req.Equal("Invalid User ID", sink.replies[0].Title)
	req.Equal(domain.ToneError, sink.replies[0].Tone)
}

func Test_Monitor_By_ID_Uses_Placeholder_For_Unresolvable_User(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	userID := "876543210987654321"
	gatewayMock.EXPECT().
		FetchUser(gomock.Any(), userID).
		Return(domain.User{}, fmt.Errorf("%w: %s", errors.ErrLookupFailed, userID))
	// A deleted account still gets monitored.
	watchlistMock.EXPECT().Add("100", userID).Return(services.Added, nil)

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.MonitorByID(context.Background(), testRequest, userID))

	req.Len(sink.replies, 1)
	req.Equal("User Monitoring Started", sink.replies[0].Title)
	req.Contains(sink.replies[0].Description, "Unknown User")
}

func Test_Monitor_Warns_When_Save_Is_Uncertain(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	user := domain.User{ID: "123456789012345678", Name: "Alice"}
	watchlistMock.EXPECT().
		Add("100", user.ID).
		Return(services.Added, fmt.Errorf("%w: disk full", errors.ErrPersistenceFailure))

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Monitor(context.Background(), testRequest, user))

	req.Len(sink.replies, 1)
	req.Equal("Monitoring Started (save uncertain)", sink.replies[0].Title)
	req.Equal(domain.ToneWarning, sink.replies[0].Tone)
}

func Test_Unmonitor_Replies_With_Confirmation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	user := domain.User{ID: "123456789012345678", Name: "Alice"}
	watchlistMock.EXPECT().Remove("100", user.ID).Return(services.Removed, nil)

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Unmonitor(context.Background(), testRequest, user))

	req.Len(sink.replies, 1)
	req.Equal("User Monitoring Stopped", sink.replies[0].Title)
	req.Equal(domain.ToneSuccess, sink.replies[0].Tone)
}

func Test_Unmonitor_Warns_When_Not_Present(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	user := domain.User{ID: "123456789012345678", Name: "Alice"}
	watchlistMock.EXPECT().Remove("100", user.ID).Return(services.NotPresent, nil)

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Unmonitor(context.Background(), testRequest, user))

	req.Len(sink.replies, 1)
	req.Equal("Not Monitored", sink.replies[0].Title)
	req.Equal(domain.ToneWarning, sink.replies[0].Tone)
}

func Test_Monitored_Lists_Users_With_Names(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	watchlistMock.EXPECT().
		List("100").
		Return([]string{"123456789012345678", "876543210987654321"}, nil)
	gatewayMock.EXPECT().
		FetchUser(gomock.Any(), "123456789012345678").
		Return(domain.User{ID: "123456789012345678", Name: "Alice"}, nil)
	gatewayMock.EXPECT().
		FetchUser(gomock.Any(), "876543210987654321").
		Return(domain.User{}, fmt.Errorf("%w", errors.ErrLookupFailed))

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Monitored(context.Background(), testRequest))

	req.Len(sink.replies, 1)
	reply := sink.replies[0]
	req.Equal("Monitored Users", reply.Title)
	req.Contains(reply.Description, "Alice (`123456789012345678`)")
	req.Contains(reply.Description, "Unknown User (`876543210987654321`)")
	req.Equal([]domain.ReplyField{{Name: "Total Count", Value: "2"}}, reply.Fields)
}

func Test_Monitored_Reports_Empty_Watchlist(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	watchlistMock.EXPECT().List("100").Return([]string{}, nil)

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Monitored(context.Background(), testRequest))

	req.Len(sink.replies, 1)
	req.Contains(sink.replies[0].Description, "No users are currently being monitored")
}

func Test_Help_Lists_Every_Command(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	watchlistMock := mocks.NewMockIWatchlistService(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	sink := &replySink{}
	sink.capture(gatewayMock)

	handler := NewHandler(watchlistMock, gatewayMock, slog.Default())
	req.NoError(handler.Help(context.Background(), testRequest))

	req.Len(sink.replies, 1)
	req.Equal("Moderation Bot Commands", sink.replies[0].Title)
	req.Len(sink.replies[0].Fields, 6)
}

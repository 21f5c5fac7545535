package server_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cinema-lab/catalog"
	"cinema-lab/domain"
	"cinema-lab/errors"
	"cinema-lab/feed"
	"cinema-lab/grpc/server"
	"cinema-lab/mocks"
	pb "cinema-lab/proto/cinema"
	"cinema-lab/services"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSubscribeStream satisfies pb.Cinema_SubscribeScreeningsServer for
// handler tests without a network.
type fakeSubscribeStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent chan *pb.Screenings
}

func newFakeSubscribeStream(ctx context.Context) *fakeSubscribeStream {
	return &fakeSubscribeStream{ctx: ctx, sent: make(chan *pb.Screenings, 32)}
}

func (s *fakeSubscribeStream) Context() context.Context { return s.ctx }

func (s *fakeSubscribeStream) Send(m *pb.Screenings) error {
	s.sent <- m
	return nil
}

func (s *fakeSubscribeStream) receive(t *testing.T) *pb.Screenings {
	t.Helper()
	select {
	case batch := <-s.sent:
		return batch
	case <-time.After(2 * time.Second):
		t.Fatal("no batch received in time")
		return nil
	}
}

func TestCinemaServer_GetFilms(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serviceMock := mocks.NewMockICinemaService(ctrl)

	serviceMock.EXPECT().Films().Return([]domain.Film{
		{ID: 1, Name: "Dune: Part One", DurationSec: 9326},
	}).Times(1)

	s := server.NewCinemaServer(silentLogger(), serviceMock, time.Second, 16)

	response, err := s.GetFilms(context.Background(), &pb.Empty{})
	req.NoError(err)
	req.Len(response.Films, 1)
	req.Equal(int32(1), response.Films[0].Id)
	req.Equal("Dune: Part One", response.Films[0].Name)
	req.Equal(int32(9326), response.Films[0].DurationSec)
}

func TestCinemaServer_GetFilmScreenings_InvalidArgument(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serviceMock := mocks.NewMockICinemaService(ctrl)

	serviceMock.EXPECT().FilmScreenings(int32(-1)).
		Return(nil, errors.ErrInvalidFilmID).Times(1)

	s := server.NewCinemaServer(silentLogger(), serviceMock, time.Second, 16)

	_, err := s.GetFilmScreenings(context.Background(),
		&pb.GetFilmScreeningsRequest{FilmId: -1})
	req.Error(err)
	req.Equal(codes.InvalidArgument, status.Code(err))
	req.Equal("'filmId' is not a number", status.Convert(err).Message())
}

func TestCinemaServer_GetFilmScreenings_MapsDomainScreenings(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serviceMock := mocks.NewMockICinemaService(ctrl)

	start := time.Unix(1714909069, 0).UTC()
	screening := domain.NewScreening(7, 2, start, start.Add(3*time.Hour),
		domain.NewVenue(1, []domain.Seat{
			{ID: 1, Type: domain.SeatVIP},
			{ID: 2, Type: domain.SeatStandard},
		}))
	_, ok := screening.PurchaseNextSeat()
	req.True(ok)

	serviceMock.EXPECT().FilmScreenings(int32(2)).
		Return([]domain.Screening{screening.Snapshot()}, nil).Times(1)

	s := server.NewCinemaServer(silentLogger(), serviceMock, time.Second, 16)

	response, err := s.GetFilmScreenings(context.Background(),
		&pb.GetFilmScreeningsRequest{FilmId: 2})
	req.NoError(err)
	req.Len(response.Screenings, 1)

	got := response.Screenings[0]
	req.Equal(int32(7), got.Id)
	req.Equal(int32(2), got.FilmId)
	req.Equal(start, got.StartDate.AsTime())
	req.Equal(int32(2), got.Venue.MaximumSeatsCount)
	req.Equal(pb.SeatType_VIP, got.Venue.Seats[0].Type)
	req.True(got.Venue.Seats[0].Purchased)
}

func TestCinemaServer_Subscribe_RejectsEmptyRequest(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// No Subscribe expectation: the handler must fail before touching
	// the service.
	serviceMock := mocks.NewMockICinemaService(ctrl)

	s := server.NewCinemaServer(silentLogger(), serviceMock, time.Second, 16)
	stream := newFakeSubscribeStream(context.Background())

	err := s.SubscribeScreenings(&pb.SubscribeScreeningsRequest{}, stream)
	req.Error(err)
	req.Equal(codes.InvalidArgument, status.Code(err))
	req.Equal("'filmIds' and 'venueIds' are undefined", status.Convert(err).Message())
	req.Empty(stream.sent)
}

func TestCinemaServer_Subscribe_UnknownKeyFailsUpfront(t *testing.T) {
	req := require.New(t)
	store, err := catalog.NewSeededStore()
	req.NoError(err)
	notifier := feed.NewNotifier()
	service := services.NewCinemaService(silentLogger(), store, notifier)

	s := server.NewCinemaServer(silentLogger(), service, time.Second, 16)
	stream := newFakeSubscribeStream(context.Background())

	err = s.SubscribeScreenings(&pb.SubscribeScreeningsRequest{
		FilmIds:  []int32{2},
		VenueIds: []int32{99},
	}, stream)
	req.Error(err)
	req.Equal(codes.NotFound, status.Code(err))
	req.Empty(stream.sent)

	// The film 2 attachment must have been rolled back.
	req.Equal(0, notifier.SubscriberCount(feed.Key{Kind: catalog.ByFilm, ID: 2}))
}

func TestCinemaServer_Subscribe_StreamsInitialAndDeltaBatches(t *testing.T) {
	req := require.New(t)
	store, err := catalog.NewSeededStore()
	req.NoError(err)
	notifier := feed.NewNotifier()
	service := services.NewCinemaService(silentLogger(), store, notifier)

	// A long check interval keeps the ticker out of the way: every
	// delta below is driven by an explicit Notify.
	s := server.NewCinemaServer(silentLogger(), service, time.Minute, 16)

	ctx, cancel := context.WithCancel(context.Background())
	stream := newFakeSubscribeStream(ctx)

	done := make(chan error, 1)
	go func() {
		done <- s.SubscribeScreenings(&pb.SubscribeScreeningsRequest{
			FilmIds: []int32{1},
		}, stream)
	}()

	// Initial batch on the empty film 1 bucket is empty but present.
	initial := stream.receive(t)
	req.Empty(initial.Screenings)

	// Two appends between checks arrive as one in-order batch.
	start := time.Unix(1714909069, 0).UTC()
	newScreening := func(venueID int32) *domain.Screening {
		return domain.NewScreening(0, 1, start, start.Add(3*time.Hour),
			domain.NewVenue(venueID, []domain.Seat{{ID: 1, Type: domain.SeatStandard}}))
	}
	first := newScreening(1)
	second := newScreening(2)
	_, _, err = store.AppendScreening(first)
	req.NoError(err)
	_, _, err = store.AppendScreening(second)
	req.NoError(err)
	notifier.Notify(feed.Key{Kind: catalog.ByFilm, ID: 1})

	delta := stream.receive(t)
	req.Len(delta.Screenings, 2)
	req.Equal(first.ID, delta.Screenings[0].Id)
	req.Equal(second.ID, delta.Screenings[1].Id)

	// A later append arrives separately, with no duplicates.
	third := newScreening(3)
	_, _, err = store.AppendScreening(third)
	req.NoError(err)
	notifier.Notify(feed.Key{Kind: catalog.ByFilm, ID: 1})

	delta = stream.receive(t)
	req.Len(delta.Screenings, 1)
	req.Equal(third.ID, delta.Screenings[0].Id)

	// Disconnecting stops the handler and detaches the subscription.
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("handler did not stop after disconnect")
	}
	req.Equal(0, notifier.SubscriberCount(feed.Key{Kind: catalog.ByFilm, ID: 1}))
}

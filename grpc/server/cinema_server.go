package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"cinema-lab/catalog"
	"cinema-lab/contract"
	"cinema-lab/domain"
	"cinema-lab/errors"
	"cinema-lab/feed"
	pb "cinema-lab/proto/cinema"
)

type CinemaServer struct {
	pb.UnimplementedCinemaServer
	cinemaService        contract.ICinemaService
	log                  *slog.Logger
	deltaCheckInterval   time.Duration
	connectionBufferSize int
}

func NewCinemaServer(log *slog.Logger, cinemaService contract.ICinemaService,
	deltaCheckInterval time.Duration, connectionBufferSize int) *CinemaServer {
	return &CinemaServer{
		cinemaService:        cinemaService,
		log:                  log,
		deltaCheckInterval:   deltaCheckInterval,
		connectionBufferSize: connectionBufferSize,
	}
}

func (s *CinemaServer) GetFilms(_ context.Context, _ *pb.Empty) (*pb.Films, error) {
	return &pb.Films{Films: toFilmResponse(s.cinemaService.Films())}, nil
}

func (s *CinemaServer) GetFilmScreenings(_ context.Context, req *pb.GetFilmScreeningsRequest) (*pb.Screenings, error) {
	screenings, err := s.cinemaService.FilmScreenings(req.FilmId)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Screenings{Screenings: toScreeningResponse(screenings)}, nil
}

// SubscribeScreenings establishes a long-lived server stream. Every
// requested film and venue key gets its own producer goroutine: an
// initial full batch first (sent even when the bucket is empty), then
// delta batches driven by the feed notification or the periodic check.
// Batches from different keys may interleave in any order; within one
// key the append order is preserved because a single producer owns the
// key's cursor. One writer loop serializes stream.Send.
// This method blocks until the client disconnects or the process shuts
// down.
func (s *CinemaServer) SubscribeScreenings(req *pb.SubscribeScreeningsRequest, stream pb.Cinema_SubscribeScreeningsServer) error {
	if len(req.FilmIds) == 0 && len(req.VenueIds) == 0 {
		s.log.Warn("Rejecting subscription without film or venue ids")
		return errors.MapToGRPCError(errors.ErrEmptySubscription)
	}

	keys := make([]feed.Key, 0, len(req.FilmIds)+len(req.VenueIds))
	for _, filmID := range req.FilmIds {
		keys = append(keys, feed.Key{Kind: catalog.ByFilm, ID: filmID})
	}
	for _, venueID := range req.VenueIds {
		keys = append(keys, feed.Key{Kind: catalog.ByVenue, ID: venueID})
	}

	// Attach every key before the first write so an unknown id fails
	// the whole call instead of a half-open stream.
	subscriptions := make([]*feed.Subscription, 0, len(keys))
	for _, key := range keys {
		sub, err := s.cinemaService.Subscribe(key)
		if err != nil {
			for _, attached := range subscriptions {
				attached.Close()
			}
			return errors.MapToGRPCError(err)
		}
		subscriptions = append(subscriptions, sub)
	}

	ctx := stream.Context()
	batches := make(chan []domain.Screening, s.connectionBufferSize)

	var wg sync.WaitGroup
	for _, sub := range subscriptions {
		wg.Add(1)
		go func(sub *feed.Subscription) {
			defer wg.Done()
			defer sub.Close()
			s.pump(ctx, sub, batches)
		}(sub)
	}
	go func() {
		wg.Wait()
		close(batches)
	}()

	for batch := range batches {
		if err := stream.Send(&pb.Screenings{Screenings: toScreeningResponse(batch)}); err != nil {
			s.log.Error("Failed to push screenings to stream", "error", err)
			// Returning cancels the stream context; the producers
			// observe it and drain out.
			return err
		}
	}

	s.log.Warn(fmt.Sprintf("Client disconnected from %d subscription key(s)", len(keys)))
	return nil
}

// pump owns one subscription cursor. The first batch is the full
// current bucket; afterwards only non-empty deltas are forwarded.
// Delivery latency is bounded by the check interval even if a feed
// notification is coalesced away.
func (s *CinemaServer) pump(ctx context.Context, sub *feed.Subscription, batches chan<- []domain.Screening) {
	initial, err := sub.Cursor.Next()
	if err != nil {
		s.log.Error("Initial batch failed", "error", err)
		return
	}
	select {
	case batches <- initial:
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(s.deltaCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Wake:
		case <-ticker.C:
		}

		batch, err := sub.Cursor.Next()
		if err != nil {
			s.log.Error("Delta check failed", "error", err)
			return
		}
		if len(batch) == 0 {
			continue
		}
		select {
		case batches <- batch:
		case <-ctx.Done():
			return
		}
	}
}

func toFilmResponse(films []domain.Film) []*pb.Film {
	return lo.Map(films, func(item domain.Film, _ int) *pb.Film {
		return &pb.Film{
			Id:          item.ID,
			Name:        item.Name,
			DurationSec: item.DurationSec,
		}
	})
}

func toScreeningResponse(screenings []domain.Screening) []*pb.Screening {
	return lo.Map(screenings, func(item domain.Screening, _ int) *pb.Screening {
		return &pb.Screening{
			Id:        item.ID,
			FilmId:    item.FilmID,
			StartDate: timestamppb.New(item.StartDate),
			EndDate:   timestamppb.New(item.EndDate),
			Venue:     toVenueResponse(item.Venue),
		}
	})
}

func toVenueResponse(venue domain.Venue) *pb.Venue {
	return &pb.Venue{
		Id:                  venue.ID,
		MaximumSeatsCount:   venue.MaximumSeats,
		PurchasedSeatsCount: venue.PurchasedSeats,
		Seats: lo.Map(venue.Seats, func(seat domain.Seat, _ int) *pb.Seat {
			return &pb.Seat{
				Id:        seat.ID,
				Type:      pb.SeatType(seat.Type),
				Purchased: seat.Purchased,
			}
		}),
	}
}

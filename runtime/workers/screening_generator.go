package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cinema-lab/catalog"
	"cinema-lab/domain"
	"cinema-lab/feed"
	"cinema-lab/random"
)

const (
	// startWindow bounds how far in the future a generated screening
	// can start, counted from the worker's base time.
	startWindow = 72 * time.Hour
	// cleaningBufferSec pads the end time after the film runtime.
	cleaningBufferSec = 1200
	seatsPerVenue     = 3
)

// ScreeningGeneratorWorker periodically synthesizes a screening with
// randomized film, venue, start time and seat types, appends it to the
// catalog and notifies the delta feed for both affected index keys.
//
// Draw order per tick is fixed (film, venue, start offset, two seat
// types) and every draw goes through the shared random.Source, so a
// seeded run is reproducible tick for tick.
type ScreeningGeneratorWorker struct {
	log      *slog.Logger
	store    *catalog.Store
	notifier *feed.Notifier
	rnd      *random.Source
	interval time.Duration
	base     time.Time
}

func NewScreeningGeneratorWorker(log *slog.Logger, store *catalog.Store,
	notifier *feed.Notifier, rnd *random.Source,
	interval time.Duration, base time.Time) *ScreeningGeneratorWorker {
	return &ScreeningGeneratorWorker{
		log:      log,
		store:    store,
		notifier: notifier,
		rnd:      rnd,
		interval: interval,
		base:     base.UTC(),
	}
}

func (w *ScreeningGeneratorWorker) Run(ctx context.Context) error {
	w.log.Info("Starting screening generator", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.tick(); err != nil {
				// Only a broken store invariant ends up here.
				return err
			}
		}
	}
}

func (w *ScreeningGeneratorWorker) tick() error {
	screening := w.nextScreening()

	filmLen, venueLen, err := w.store.AppendScreening(screening)
	if err != nil {
		return err
	}

	w.notifier.Notify(feed.Key{Kind: catalog.ByFilm, ID: screening.FilmID})
	w.notifier.Notify(feed.Key{Kind: catalog.ByVenue, ID: screening.Venue.ID})

	w.log.Debug(fmt.Sprintf("Screening %d appended (film %d at position %d, venue %d at position %d)",
		screening.ID, screening.FilmID, filmLen, screening.Venue.ID, venueLen))
	return nil
}

// nextScreening draws the randomized attributes. The screening id is
// left to the store's monotonic allocator.
func (w *ScreeningGeneratorWorker) nextScreening() *domain.Screening {
	filmID := int32(w.rnd.IntBetween(1, w.store.FilmCount()))
	venueID := int32(w.rnd.IntBetween(1, w.store.VenueKeyCount()))
	startOffset := w.rnd.IntBetween(0, int(startWindow/time.Second))

	seats := make([]domain.Seat, 0, seatsPerVenue)
	for i := 0; i < seatsPerVenue; i++ {
		seatType := domain.SeatStandard
		if i < seatsPerVenue-1 {
			seatType = domain.SeatType(w.rnd.IntBetween(0, 2))
		}
		seats = append(seats, domain.Seat{ID: int32(i + 1), Type: seatType})
	}

	film, _ := w.store.Film(filmID)
	start := w.base.Add(time.Duration(startOffset) * time.Second)
	end := start.Add(time.Duration(film.DurationSec+cleaningBufferSec) * time.Second)

	return domain.NewScreening(0, filmID, start, end, domain.NewVenue(venueID, seats))
}

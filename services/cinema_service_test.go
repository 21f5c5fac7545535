package services_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cinema-lab/catalog"
	"cinema-lab/domain"
	"cinema-lab/errors"
	"cinema-lab/feed"
	"cinema-lab/services"
)

func newService(t *testing.T) (*services.CinemaService, *catalog.Store, *feed.Notifier) {
	t.Helper()
	store, err := catalog.NewSeededStore()
	require.NoError(t, err)
	notifier := feed.NewNotifier()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewCinemaService(log, store, notifier), store, notifier
}

func Test_Films_returns_the_seeded_catalog(t *testing.T) {
	req := require.New(t)
	service, _, _ := newService(t)

	films := service.Films()

	req.Len(films, 3)
	req.Equal("Dune: Part One", films[0].Name)
}

func Test_FilmScreenings_rejects_malformed_id(t *testing.T) {
	req := require.New(t)
	service, store, _ := newService(t)
	before := store.ScreeningCount()

	for _, filmID := range []int32{0, -1, -42} {
		_, err := service.FilmScreenings(filmID)
		req.ErrorIs(err, errors.ErrInvalidFilmID)
	}

	// Validation failures leave the store untouched.
	req.Equal(before, store.ScreeningCount())
}

func Test_FilmScreenings_unknown_id_is_not_found(t *testing.T) {
	req := require.New(t)
	service, _, _ := newService(t)

	_, err := service.FilmScreenings(99)
	req.ErrorIs(err, errors.ErrUnknownKey)
}

func Test_FilmScreenings_returns_the_committed_bucket(t *testing.T) {
	req := require.New(t)
	service, store, _ := newService(t)

	screenings, err := service.FilmScreenings(2)
	req.NoError(err)
	req.Len(screenings, 1)

	seats := []domain.Seat{{ID: 1, Type: domain.SeatStandard}}
	start := time.Unix(1714909069, 0).UTC()
	_, _, err = store.AppendScreening(
		domain.NewScreening(0, 2, start, start.Add(time.Hour), domain.NewVenue(2, seats)))
	req.NoError(err)

	screenings, err = service.FilmScreenings(2)
	req.NoError(err)
	req.Len(screenings, 2)
}

func Test_Subscribe_attaches_on_known_keys_only(t *testing.T) {
	req := require.New(t)
	service, _, notifier := newService(t)
	key := feed.Key{Kind: catalog.ByVenue, ID: 1}

	sub, err := service.Subscribe(key)
	req.NoError(err)
	req.Equal(1, notifier.SubscriberCount(key))

	sub.Close()
	req.Equal(0, notifier.SubscriberCount(key))

	_, err = service.Subscribe(feed.Key{Kind: catalog.ByVenue, ID: 77})
	req.ErrorIs(err, errors.ErrUnknownKey)
}

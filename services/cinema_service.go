package services

import (
	"fmt"
	"log/slog"

	"cinema-lab/catalog"
	"cinema-lab/domain"
	"cinema-lab/errors"
	"cinema-lab/feed"
)

// CinemaService sits between the gRPC servers and the catalog/feed.
// It owns input validation; the store below it only ever sees
// well-formed keys.
type CinemaService struct {
	log      *slog.Logger
	store    *catalog.Store
	notifier *feed.Notifier
}

func NewCinemaService(log *slog.Logger, store *catalog.Store, notifier *feed.Notifier) *CinemaService {
	return &CinemaService{log: log, store: store, notifier: notifier}
}

func (s *CinemaService) Films() []domain.Film {
	return s.store.Films()
}

// FilmScreenings returns the committed bucket for the film. A
// non-positive id is a malformed argument; a well-formed id outside
// the index domain is a not-found.
func (s *CinemaService) FilmScreenings(filmID int32) ([]domain.Screening, error) {
	if filmID < 1 {
		s.log.Warn(fmt.Sprintf("Rejecting malformed filmId %d", filmID))
		return nil, errors.ErrInvalidFilmID
	}
	return s.store.Screenings(catalog.ByFilm, filmID)
}

// Subscribe attaches a delta subscription on one index key.
func (s *CinemaService) Subscribe(key feed.Key) (*feed.Subscription, error) {
	sub, err := feed.NewSubscription(s.store, s.notifier, key)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Subscription rejected for %s key %d", key.Kind, key.ID))
		return nil, err
	}
	return sub, nil
}

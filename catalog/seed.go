package catalog

import (
	"time"

	"cinema-lab/domain"
)

// Seed data matching the historical catalog: three films, three known
// keys per index, one pre-existing screening for film 2 in venue 1.

func SeedFilms() []domain.Film {
	return []domain.Film{
		{ID: 1, Name: "Dune: Part One", DurationSec: 9326},
		{ID: 2, Name: "Dune: Part Two", DurationSec: 9937},
		{ID: 3, Name: "Star Wars: The Rise of Skywalker", DurationSec: 8460},
	}
}

func SeedFilmKeys() []int32 {
	return []int32{1, 2, 3}
}

func SeedVenueKeys() []int32 {
	return []int32{1, 2, 3}
}

func seedScreening() *domain.Screening {
	seats := []domain.Seat{
		{ID: 1, Type: domain.SeatStandard},
		{ID: 2, Type: domain.SeatStandard},
		{ID: 3, Type: domain.SeatStandard},
	}
	return domain.NewScreening(1, 2,
		time.Unix(1714909069, 0).UTC(),
		time.Unix(1714920206, 0).UTC(),
		domain.NewVenue(1, seats))
}

// NewSeededStore builds the store every binary starts from.
func NewSeededStore() (*Store, error) {
	st := NewStore(SeedFilms(), SeedFilmKeys(), SeedVenueKeys())
	if _, _, err := st.AppendScreening(seedScreening()); err != nil {
		return nil, err
	}
	return st, nil
}

package domain

import (
	"sync"
	"time"
)

type SeatType int32

const (
	SeatStandard SeatType = 0
	SeatPremium  SeatType = 1
	SeatVIP      SeatType = 2
)

type Seat struct {
	ID        int32
	Type      SeatType
	Purchased bool
}

// Venue is the seat inventory attached to exactly one screening.
// MaximumSeats is derived from the seat slice at construction so the
// capacity can never drift from the actual inventory.
type Venue struct {
	ID             int32
	MaximumSeats   int32
	PurchasedSeats int32
	Seats          []Seat
}

func NewVenue(id int32, seats []Seat) Venue {
	return Venue{
		ID:           id,
		MaximumSeats: int32(len(seats)),
		Seats:        seats,
	}
}

// Screening is shared by the film index and the venue index of the
// catalog: there is exactly one writable copy per screening. All seat
// state is guarded by mu; readers get consistent value copies through
// Snapshot, never a half-applied purchase.
type Screening struct {
	mu *sync.Mutex

	ID        int32
	FilmID    int32
	StartDate time.Time
	EndDate   time.Time
	Venue     Venue
}

func NewScreening(id, filmID int32, start, end time.Time, venue Venue) *Screening {
	return &Screening{
		mu:        &sync.Mutex{},
		ID:        id,
		FilmID:    filmID,
		StartDate: start,
		EndDate:   end,
		Venue:     venue,
	}
}

// PurchaseNextSeat marks the first unpurchased seat in inventory order
// as purchased and increments the purchased counter in the same
// critical section. A full venue is a benign no-op, not an error.
func (s *Screening) PurchaseNextSeat() (int32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Venue.Seats {
		if s.Venue.Seats[i].Purchased {
			continue
		}
		s.Venue.Seats[i].Purchased = true
		s.Venue.PurchasedSeats++
		return s.Venue.Seats[i].ID, true
	}
	return 0, false
}

// Available reports whether at least one seat can still be purchased.
func (s *Screening) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Venue.PurchasedSeats < s.Venue.MaximumSeats
}

// Snapshot returns a deep value copy taken under the screening lock.
// Serialization for the wire must happen on snapshots, outside any
// store critical section.
func (s *Screening) Snapshot() Screening {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats := make([]Seat, len(s.Venue.Seats))
	copy(seats, s.Venue.Seats)
	return Screening{
		ID:        s.ID,
		FilmID:    s.FilmID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Venue: Venue{
			ID:             s.Venue.ID,
			MaximumSeats:   s.Venue.MaximumSeats,
			PurchasedSeats: s.Venue.PurchasedSeats,
			Seats:          seats,
		},
	}
}

// Validate checks the venue counting invariants. A failure here means
// a programming error, never a caller mistake.
func (s *Screening) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchased := int32(0)
	for _, seat := range s.Venue.Seats {
		if seat.Purchased {
			purchased++
		}
	}
	return purchased == s.Venue.PurchasedSeats &&
		s.Venue.PurchasedSeats <= s.Venue.MaximumSeats &&
		s.Venue.MaximumSeats <= int32(len(s.Venue.Seats))
}

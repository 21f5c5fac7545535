package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cinema-lab/domain"
)

func threeSeatScreening() *domain.Screening {
	seats := []domain.Seat{
		{ID: 1, Type: domain.SeatStandard},
		{ID: 2, Type: domain.SeatStandard},
		{ID: 3, Type: domain.SeatStandard},
	}
	start := time.Unix(1714909069, 0).UTC()
	return domain.NewScreening(1, 2, start, start.Add(2*time.Hour), domain.NewVenue(1, seats))
}

func Test_NewVenue_derives_capacity_from_seats(t *testing.T) {
	req := require.New(t)

	venue := domain.NewVenue(1, []domain.Seat{{ID: 1}, {ID: 2}})

	req.Equal(int32(2), venue.MaximumSeats)
	req.Equal(int32(0), venue.PurchasedSeats)
}

func Test_PurchaseNextSeat_fills_seats_in_order(t *testing.T) {
	req := require.New(t)
	screening := threeSeatScreening()

	for i, wantSeat := range []int32{1, 2, 3} {
		seatID, ok := screening.PurchaseNextSeat()
		req.True(ok)
		req.Equal(wantSeat, seatID)

		snapshot := screening.Snapshot()
		req.Equal(int32(i+1), snapshot.Venue.PurchasedSeats)
		req.True(screening.Validate())
	}

	// A fourth purchase on the full venue is a benign no-op.
	_, ok := screening.PurchaseNextSeat()
	req.False(ok)
	req.False(screening.Available())

	snapshot := screening.Snapshot()
	req.Equal(int32(3), snapshot.Venue.PurchasedSeats)
	for _, seat := range snapshot.Venue.Seats {
		req.True(seat.Purchased)
	}
}

func Test_PurchaseNextSeat_marks_exactly_one_seat(t *testing.T) {
	req := require.New(t)
	screening := threeSeatScreening()

	seatID, ok := screening.PurchaseNextSeat()
	req.True(ok)
	req.Equal(int32(1), seatID)

	snapshot := screening.Snapshot()
	purchased := 0
	for _, seat := range snapshot.Venue.Seats {
		if seat.Purchased {
			purchased++
			req.Equal(seatID, seat.ID)
		}
	}
	req.Equal(1, purchased)
}

func Test_Snapshot_is_isolated_from_later_mutation(t *testing.T) {
	req := require.New(t)
	screening := threeSeatScreening()

	before := screening.Snapshot()
	_, ok := screening.PurchaseNextSeat()
	req.True(ok)

	req.Equal(int32(0), before.Venue.PurchasedSeats)
	req.False(before.Venue.Seats[0].Purchased)
}

func Test_Available_tracks_remaining_capacity(t *testing.T) {
	req := require.New(t)
	screening := threeSeatScreening()

	req.True(screening.Available())
	for i := 0; i < 3; i++ {
		_, ok := screening.PurchaseNextSeat()
		req.True(ok)
	}
	req.False(screening.Available())
}

package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cinema-lab/catalog"
	"cinema-lab/domain"
	"cinema-lab/errors"
	"cinema-lab/feed"
)

func newTestScreening(filmID, venueID int32) *domain.Screening {
	seats := []domain.Seat{
		{ID: 1, Type: domain.SeatStandard},
		{ID: 2, Type: domain.SeatStandard},
		{ID: 3, Type: domain.SeatStandard},
	}
	start := time.Unix(1714909069, 0).UTC()
	return domain.NewScreening(0, filmID, start, start.Add(3*time.Hour),
		domain.NewVenue(venueID, seats))
}

func Test_Cursor_first_batch_is_full_bucket(t *testing.T) {
	req := require.New(t)
	store, err := catalog.NewSeededStore()
	req.NoError(err)

	cursor := feed.NewCursor(store, feed.Key{Kind: catalog.ByFilm, ID: 2})

	batch, err := cursor.Next()
	req.NoError(err)
	req.Len(batch, 1)
	req.Equal(1, cursor.Position())
}

func Test_Cursor_delivers_appends_exactly_once_in_order(t *testing.T) {
	req := require.New(t)
	store, err := catalog.NewSeededStore()
	req.NoError(err)

	// Attach on the empty film 1 bucket: initial batch is empty.
	cursor := feed.NewCursor(store, feed.Key{Kind: catalog.ByFilm, ID: 1})
	initial, err := cursor.Next()
	req.NoError(err)
	req.Empty(initial)

	// Two appends between checks arrive as one batch, in creation order.
	first := newTestScreening(1, 1)
	second := newTestScreening(1, 2)
	_, _, err = store.AppendScreening(first)
	req.NoError(err)
	_, _, err = store.AppendScreening(second)
	req.NoError(err)

	batch, err := cursor.Next()
	req.NoError(err)
	req.Len(batch, 2)
	req.Equal(first.ID, batch[0].ID)
	req.Equal(second.ID, batch[1].ID)

	// A later third append arrives alone, without repeating the others.
	third := newTestScreening(1, 3)
	_, _, err = store.AppendScreening(third)
	req.NoError(err)

	batch, err = cursor.Next()
	req.NoError(err)
	req.Len(batch, 1)
	req.Equal(third.ID, batch[0].ID)

	// Nothing new: empty delta, watermark stays put.
	batch, err = cursor.Next()
	req.NoError(err)
	req.Empty(batch)
	req.Equal(3, cursor.Position())
}

func Test_Cursor_attached_late_skips_earlier_items(t *testing.T) {
	req := require.New(t)
	store, err := catalog.NewSeededStore()
	req.NoError(err)

	_, _, err = store.AppendScreening(newTestScreening(1, 1))
	req.NoError(err)

	sub, err := feed.NewSubscription(store, feed.NewNotifier(), feed.Key{Kind: catalog.ByFilm, ID: 1})
	req.NoError(err)
	defer sub.Close()

	// Consume the initial batch, then verify only post-attach items flow.
	initial, err := sub.Cursor.Next()
	req.NoError(err)
	req.Len(initial, 1)

	late := newTestScreening(1, 2)
	_, _, err = store.AppendScreening(late)
	req.NoError(err)

	batch, err := sub.Cursor.Next()
	req.NoError(err)
	req.Len(batch, 1)
	req.Equal(late.ID, batch[0].ID)
}

func Test_Notifier_wakes_every_subscriber_on_key(t *testing.T) {
	req := require.New(t)
	notifier := feed.NewNotifier()
	key := feed.Key{Kind: catalog.ByVenue, ID: 1}

	wake1, cancel1 := notifier.Subscribe(key)
	wake2, cancel2 := notifier.Subscribe(key)
	defer cancel1()
	defer cancel2()

	otherWake, otherCancel := notifier.Subscribe(feed.Key{Kind: catalog.ByVenue, ID: 2})
	defer otherCancel()

	notifier.Notify(key)

	req.Len(wake1, 1)
	req.Len(wake2, 1)
	req.Empty(otherWake)
}

func Test_Notifier_coalesces_pending_signals(t *testing.T) {
	req := require.New(t)
	notifier := feed.NewNotifier()
	key := feed.Key{Kind: catalog.ByFilm, ID: 3}

	wake, cancel := notifier.Subscribe(key)
	defer cancel()

	notifier.Notify(key)
	notifier.Notify(key)

	// Buffered signal channel holds a single pending wake-up.
	req.Len(wake, 1)
	<-wake
	req.Empty(wake)
}

func Test_Notifier_cleans_up_on_cancel(t *testing.T) {
	req := require.New(t)
	notifier := feed.NewNotifier()
	key := feed.Key{Kind: catalog.ByFilm, ID: 1}

	_, cancel := notifier.Subscribe(key)
	req.Equal(1, notifier.SubscriberCount(key))

	cancel()
	req.Equal(0, notifier.SubscriberCount(key))

	// Cancel is idempotent.
	cancel()
	req.Equal(0, notifier.SubscriberCount(key))
}

func Test_NewSubscription_rejects_unknown_key(t *testing.T) {
	req := require.New(t)
	store, err := catalog.NewSeededStore()
	req.NoError(err)

	_, err = feed.NewSubscription(store, feed.NewNotifier(), feed.Key{Kind: catalog.ByFilm, ID: 99})
	req.ErrorIs(err, errors.ErrUnknownKey)
}

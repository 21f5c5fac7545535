package feed

import (
	"cinema-lab/catalog"
	"cinema-lab/domain"
)

// Cursor is a per-subscriber watermark over one append-only bucket.
// Next returns exactly the items appended since the previous call, in
// append order, each item at most once. Appends landing between two
// calls are batched together.
type Cursor struct {
	store     *catalog.Store
	key       Key
	watermark int
}

func NewCursor(store *catalog.Store, key Key) *Cursor {
	return &Cursor{store: store, key: key}
}

// Next cuts the slice [watermark, len) against the committed bucket
// and advances the watermark by what was actually taken. The first
// call on a fresh cursor returns the full current bucket, which doubles
// as the initial subscription batch.
func (c *Cursor) Next() ([]domain.Screening, error) {
	batch, err := c.store.SliceSince(c.key.Kind, c.key.ID, c.watermark)
	if err != nil {
		return nil, err
	}
	c.watermark += len(batch)
	return batch, nil
}

// Position returns the current watermark.
func (c *Cursor) Position() int {
	return c.watermark
}

// Subscription bundles a cursor with its wake-up channel. Close must be
// called when the subscriber disconnects.
type Subscription struct {
	Cursor *Cursor
	Wake   <-chan struct{}
	cancel func()
}

// NewSubscription validates the key against the store's index domain
// before attaching, so a subscription to a key outside the catalog
// fails upfront instead of silently never delivering.
func NewSubscription(store *catalog.Store, notifier *Notifier, key Key) (*Subscription, error) {
	if _, err := store.BucketLen(key.Kind, key.ID); err != nil {
		return nil, err
	}
	wake, cancel := notifier.Subscribe(key)
	return &Subscription{
		Cursor: NewCursor(store, key),
		Wake:   wake,
		cancel: cancel,
	}, nil
}

func (s *Subscription) Close() {
	s.cancel()
}

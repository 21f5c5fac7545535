package catalog

import (
	"slices"
	"sync"

	"cinema-lab/domain"
	"cinema-lab/errors"
)

// IndexKind selects one of the two secondary indices over screenings.
type IndexKind int

const (
	ByFilm IndexKind = iota
	ByVenue
)

func (k IndexKind) String() string {
	if k == ByFilm {
		return "byFilmId"
	}
	return "byVenueId"
}

// Store is the single source of truth for films and screenings.
// Both indices reference the same *domain.Screening, so a seat purchase
// observed through the venue index is instantaneously visible through
// the film index. Buckets are append-only: a screening never moves and
// is never removed during the process lifetime.
//
// Locking is two-level: the store RWMutex guards the film list and the
// index maps/buckets, each screening guards its own seat state.
// Purchases on distinct screenings therefore proceed concurrently.
type Store struct {
	mu        sync.RWMutex
	films     []domain.Film
	byFilmID  map[int32][]*domain.Screening
	byVenueID map[int32][]*domain.Screening
	nextID    int32
}

// NewStore initializes the catalog with its immutable film list and
// the known film/venue keys. Known-but-empty keys answer queries with
// an empty bucket, unknown keys answer with ErrUnknownKey.
func NewStore(films []domain.Film, filmKeys, venueKeys []int32) *Store {
	st := &Store{
		films:     films,
		byFilmID:  make(map[int32][]*domain.Screening),
		byVenueID: make(map[int32][]*domain.Screening),
		nextID:    1,
	}
	for _, key := range filmKeys {
		st.byFilmID[key] = nil
	}
	for _, key := range venueKeys {
		st.byVenueID[key] = nil
	}
	return st
}

// Films returns a snapshot copy of the film list.
func (st *Store) Films() []domain.Film {
	st.mu.RLock()
	defer st.mu.RUnlock()

	films := make([]domain.Film, len(st.films))
	copy(films, st.films)
	return films
}

func (st *Store) Film(id int32) (domain.Film, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, film := range st.films {
		if film.ID == id {
			return film, true
		}
	}
	return domain.Film{}, false
}

// FilmCount and VenueKeyCount bound the generator draws.
func (st *Store) FilmCount() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.films)
}

func (st *Store) VenueKeyCount() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.byVenueID)
}

// ScreeningCount returns how many screenings the catalog holds. Each
// screening lives in exactly one film bucket, so summing those is the
// total.
func (st *Store) ScreeningCount() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	total := 0
	for _, bucket := range st.byFilmID {
		total += len(bucket)
	}
	return total
}

func (st *Store) bucket(kind IndexKind, key int32) ([]*domain.Screening, bool) {
	switch kind {
	case ByFilm:
		b, ok := st.byFilmID[key]
		return b, ok
	default:
		b, ok := st.byVenueID[key]
		return b, ok
	}
}

// Screenings returns a deep snapshot of the committed bucket for the
// given key, in append order.
func (st *Store) Screenings(kind IndexKind, key int32) ([]domain.Screening, error) {
	return st.SliceSince(kind, key, 0)
}

// SliceSince returns deep snapshots of the bucket items at positions
// [from, len). It backs the delta feed: batches are cut against the
// committed state at call time and copied outside any screening lock
// longer than a single copy.
func (st *Store) SliceSince(kind IndexKind, key int32, from int) ([]domain.Screening, error) {
	st.mu.RLock()
	bucket, ok := st.bucket(kind, key)
	if !ok {
		st.mu.RUnlock()
		return nil, errors.ErrUnknownKey
	}
	tail := bucket[min(from, len(bucket)):]
	refs := make([]*domain.Screening, len(tail))
	copy(refs, tail)
	st.mu.RUnlock()

	// Snapshot each screening after releasing the index lock: the
	// bucket is append-only, so the captured references stay valid.
	items := make([]domain.Screening, 0, len(refs))
	for _, s := range refs {
		items = append(items, s.Snapshot())
	}
	return items, nil
}

// BucketLen returns the current committed length of a bucket.
func (st *Store) BucketLen(kind IndexKind, key int32) (int, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	bucket, ok := st.bucket(kind, key)
	if !ok {
		return 0, errors.ErrUnknownKey
	}
	return len(bucket), nil
}

// AppendScreening inserts the screening into both its film bucket and
// its venue bucket as one indivisible operation: a concurrent reader
// can never observe it in one index only. A zero screening id is
// replaced by the next monotonic id. Missing bucket keys are added to
// the index domain on the fly.
//
// The returned lengths are the new bucket sizes, used by callers to
// drive delta notifications.
func (st *Store) AppendScreening(s *domain.Screening) (int, int, error) {
	if !s.Validate() {
		return 0, 0, errors.ErrInvariantBroken
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if s.ID == 0 {
		s.ID = st.nextID
	}
	if s.ID >= st.nextID {
		st.nextID = s.ID + 1
	}

	st.byFilmID[s.FilmID] = append(st.byFilmID[s.FilmID], s)
	st.byVenueID[s.Venue.ID] = append(st.byVenueID[s.Venue.ID], s)
	return len(st.byFilmID[s.FilmID]), len(st.byVenueID[s.Venue.ID]), nil
}

// PurchaseNextAvailableSeat atomically purchases the first unpurchased
// seat of the screening. ok=false means the venue is full, which is a
// normal outcome.
func (st *Store) PurchaseNextAvailableSeat(s *domain.Screening) (int32, bool) {
	return s.PurchaseNextSeat()
}

// AvailableScreenings returns the screenings whose venue still has an
// unpurchased seat, evaluated against the committed state at call
// time. The purchaser draws from this snapshot; losing the race to the
// last seat on the chosen screening is benign because the purchase
// itself is independently atomic.
//
// Film keys are walked in sorted order so the listing is stable: the
// purchaser's seeded draw must land on the same screening across runs.
func (st *Store) AvailableScreenings() []*domain.Screening {
	st.mu.RLock()
	keys := make([]int32, 0, len(st.byFilmID))
	for key := range st.byFilmID {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	refs := make([]*domain.Screening, 0)
	for _, key := range keys {
		refs = append(refs, st.byFilmID[key]...)
	}
	st.mu.RUnlock()

	available := make([]*domain.Screening, 0, len(refs))
	for _, s := range refs {
		if s.Available() {
			available = append(available, s)
		}
	}
	return available
}

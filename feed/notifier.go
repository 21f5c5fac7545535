package feed

import (
	"sync"

	"github.com/google/uuid"

	"cinema-lab/catalog"
)

// Key identifies one index bucket of the catalog.
type Key struct {
	Kind catalog.IndexKind
	ID   int32
}

// Notifier wakes subscribers when a bucket grows. Each subscriber owns
// a buffered signal channel; Notify never blocks. A coalesced or
// dropped signal is harmless because cursors re-read the bucket length
// on every check, and the periodic delta tick bounds latency anyway.
type Notifier struct {
	mu   sync.RWMutex
	subs map[Key]map[string]chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[Key]map[string]chan struct{})}
}

// Notify signals every subscriber attached to the key.
func (n *Notifier) Notify(key Key) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs[key] {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending wake-up.
		}
	}
}

// Subscribe attaches a new subscriber to the key and returns its
// wake-up channel plus the cancel function that detaches it. Empty key
// entries are removed on cancel to avoid growing forever.
func (n *Notifier) Subscribe(key Key) (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan struct{}, 1)
	if _, ok := n.subs[key]; !ok {
		n.subs[key] = make(map[string]chan struct{})
	}
	n.subs[key][id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if subscribers, ok := n.subs[key]; ok {
			delete(subscribers, id)
			if len(subscribers) == 0 {
				delete(n.subs, key)
			}
		}
	}
	return ch, cancel
}

// SubscriberCount is used by telemetry and tests.
func (n *Notifier) SubscriberCount(key Key) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs[key])
}

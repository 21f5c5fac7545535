package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cinema-lab/catalog"
	"cinema-lab/random"
)

// SeatPurchaserWorker periodically buys one seat on a screening picked
// uniformly at random among those that still have capacity. An empty
// available set makes the tick a silent no-op: no draw, no error.
//
// The available set can change between the snapshot and the purchase,
// which is fine: the purchase targets one already-chosen screening and
// is atomic there, and losing the race to its last seat is benign.
type SeatPurchaserWorker struct {
	log      *slog.Logger
	store    *catalog.Store
	rnd      *random.Source
	interval time.Duration
}

func NewSeatPurchaserWorker(log *slog.Logger, store *catalog.Store,
	rnd *random.Source, interval time.Duration) *SeatPurchaserWorker {
	return &SeatPurchaserWorker{log: log, store: store, rnd: rnd, interval: interval}
}

func (w *SeatPurchaserWorker) Run(ctx context.Context) error {
	w.log.Info("Starting seat purchaser", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *SeatPurchaserWorker) tick() {
	available := w.store.AvailableScreenings()
	if len(available) == 0 {
		w.log.Debug("No available screening, skipping purchase tick")
		return
	}

	screening := available[w.rnd.IntBetween(0, len(available)-1)]
	seatID, ok := w.store.PurchaseNextAvailableSeat(screening)
	if !ok {
		// Someone bought the last seat between the snapshot and now.
		w.log.Debug(fmt.Sprintf("Screening %d filled up before purchase", screening.ID))
		return
	}
	w.log.Debug(fmt.Sprintf("Purchased seat %d on screening %d", seatID, screening.ID))
}

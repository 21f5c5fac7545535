package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"cinema-lab/catalog"
)

// TelemetryWorker logs process health (RSS, CPU) together with catalog
// counters at a fixed interval. Debug level only: this is operator
// noise, not part of the service surface.
type TelemetryWorker struct {
	log      *slog.Logger
	store    *catalog.Store
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, store *catalog.Store, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, store: store, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Debug("Catalog telemetry",
				"screenings", w.store.ScreeningCount(),
				"available", len(w.store.AvailableScreenings()),
				"ram_bytes", rss,
				"cpu_percent", cpu,
			)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}

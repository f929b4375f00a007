package workers

import (
	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. A zero interval disables the
// session sweeper.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.SessionSweepInterval > 0 {
		sweeper, err := NewSessionSweeper(storages.SessionRepository, cfg.SessionSweepInterval, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, sweeper)
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

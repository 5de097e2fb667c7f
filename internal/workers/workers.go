package workers

import "context"

// Workers runs a set of [Worker] values in order.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

package workers

type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers into one aggregate.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop terminates every worker that supports graceful termination.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stopper, ok := worker.(Stopper); ok {
			stopper.Stop()
		}
	}
}

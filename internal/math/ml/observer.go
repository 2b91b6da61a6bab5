package ml

// Observer gets notified about the progress of the training loop.
type Observer interface {
	// Iteration is called after every pass over the dataset,
	// with the number of clusters that received no points in that pass.
	Iteration(i int, empty int)
	// Converged is called once the centroids stopped moving.
	Converged(iterations int)
}

// VoidObserver ignores all training events.
type VoidObserver struct {
}

func (v VoidObserver) Iteration(i int, empty int) {}

func (v VoidObserver) Converged(iterations int) {}

package client

import "context"

// Ingestor is the lifecycle contract of a one-shot client application.
type Ingestor interface {
	// Run executes one complete submission and returns its terminal error,
	// if any. Taxonomy failures come back wrapped in their sentinel so the
	// caller can choose the exit status; unexpected errors pass through
	// unclassified.
	Run(ctx context.Context) error
}

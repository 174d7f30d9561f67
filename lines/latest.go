package lines

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrSuperseded is returned by Latest.Submit when a newer
// submission started before this one finished.
var ErrSuperseded = errors.New("superseded by a newer submission")

// Latest serializes delivery of results for callers that
// recompute on every input change. Each Submit cancels the
// submission still in flight, and only the newest submission
// ever delivers its output.
type Latest struct {
	// Processor runs the submissions. Nil uses a zero
	// Processor.
	Processor *Processor

	mu        sync.Mutex
	issued    uint64
	cancel    context.CancelFunc
	delivered uint64
	output    string
}

// Submit processes input and returns its output together with
// the submission sequence number. Sequence numbers start at 1
// and increase with every call.
func (la *Latest) Submit(
	ctx context.Context,
	input string,
	cfg Config,
) (string, uint64, error) {
	const errCtx = "submitting input"

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	la.mu.Lock()

	if la.cancel != nil {
		la.cancel()
	}

	la.issued++
	seq := la.issued
	la.cancel = cancel
	pr := la.processor()

	la.mu.Unlock()

	out, err := pr.Process(runCtx, input, cfg)

	la.mu.Lock()
	defer la.mu.Unlock()

	if seq != la.issued {
		return "", seq, fmt.Errorf(
			"%s: sequence %d: %w", errCtx, seq, ErrSuperseded,
		)
	}

	la.cancel = nil

	if err != nil {
		return "", seq, fmt.Errorf("%s: %w", errCtx, err)
	}

	la.delivered = seq
	la.output = out

	return out, seq, nil
}

// Current returns the most recently delivered output and its
// sequence number. The sequence is 0 before any delivery.
func (la *Latest) Current() (string, uint64) {
	la.mu.Lock()
	defer la.mu.Unlock()

	return la.output, la.delivered
}

func (la *Latest) processor() *Processor {
	if la.Processor != nil {
		return la.Processor
	}

	return &defaultProcessor
}

package lines

import "github.com/byte4ever/textdigest/digest"

// SumFunc is the signature of the Processor hashing hook.
type SumFunc = func(string, digest.Algorithm) (digest.Result, error)

// NewProcessorForTest returns a Processor that hashes with sum.
func NewProcessorForTest(parallelism int, sum SumFunc) *Processor {
	return &Processor{Parallelism: parallelism, sum: sum}
}

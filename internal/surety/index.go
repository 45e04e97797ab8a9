package surety

import "math/rand/v2"

// IndexSource draws oracle indexes, Intn returns a value in [0, n)
type IndexSource interface {
	Intn(n int) int
}

type randomIndexSource struct{}

func NewRandomIndexSource() IndexSource { return randomIndexSource{} }

func (randomIndexSource) Intn(n int) int { return rand.IntN(n) }

// SequenceIndexSource replays a fixed sequence of draws modulo n, wrapping around at the end
type SequenceIndexSource struct {
	values []int
	next   int
}

func NewSequenceIndexSource(values ...int) *SequenceIndexSource {
	return &SequenceIndexSource{values: values}
}

func (source *SequenceIndexSource) Intn(n int) int {
	if len(source.values) == 0 {
		return 0
	}
	value := source.values[source.next%len(source.values)]
	source.next++
	return value % n
}

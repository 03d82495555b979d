package batcher

// Priority is the coarse scheduling class of a queued item.
//
// There are exactly three ordered levels. Higher values are served first;
// the order is strict, not weighted (see Batcher).
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityMid
	PriorityHigh

	// NumPriorities is the number of priority levels (also the queue array size).
	NumPriorities = 3
)

// String returns the lowercase name of the priority level.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMid:
		return "mid"
	case PriorityHigh:
		return "high"
	default:
		return "invalid"
	}
}

func (p Priority) valid() bool {
	return p < NumPriorities
}

// Package operation
package operation

// EventOperationInterface observation journal operation interface
type EventOperationInterface interface {
	// SaveEvents appends events to the journal, assigning their ids
	SaveEvents(events []*Event) (err error)
	// GetEventsAfter returns at most limit events whose id is larger than after, ordered by id
	GetEventsAfter(after uint, limit int) (events []*Event, err error)
}

package event

// EventType identifies the kind of an Event
type EventType string

const (
	// ScanCompleteEventType payload is a *scanner.Report
	ScanCompleteEventType EventType = "scan-complete"
	// ErrorEventType payload is an error that did not stop the producer
	ErrorEventType EventType = "error"
	// FatalErrorEventType payload is an error that stopped the producer
	FatalErrorEventType EventType = "fatal-error"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}

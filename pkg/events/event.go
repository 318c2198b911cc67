package events

import "time"

// AnalysisCompleted is emitted once per answered analysis request.
const AnalysisCompleted = "analysis.completed"

// Event is what gets forwarded to the external event bus.
type Event interface {
	// EventType doubles as the subject suffix on the bus.
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewAnalysisCompleted describes one finished analysis. The result body is
// not included; subscribers read it from session history.
func NewAnalysisCompleted(sessionID, mode, endpoint string, latency time.Duration, at time.Time) BaseEvent {
	return BaseEvent{
		Type: AnalysisCompleted,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"mode":        mode,
			"endpoint":    endpoint,
			"latency_ms":  latency.Milliseconds(),
			"occurred_at": at.UTC().Format(time.RFC3339),
		},
		OccurredAt: at,
	}
}

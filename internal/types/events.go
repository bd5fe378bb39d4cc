package types

// Step names the pipeline stage a status event refers to.
type Step string

// Pipeline stages, in execution order
const (
	StepParsing     Step = "parsing"
	StepQuerying    Step = "querying"
	StepSearching   Step = "searching"
	StepClassifying Step = "classifying"
	StepExtracting  Step = "extracting"
	StepScoring     Step = "scoring"
	StepDone        Step = "done"
	StepFailed      Step = "failed"
)

// EventType discriminates the events on a run's incremental stream.
type EventType string

// Event types emitted during a run
const (
	EventStatus          EventType = "status"
	EventCriteria        EventType = "criteria"
	EventQueries         EventType = "queries"
	EventCandidatesFound EventType = "candidatesFound"
	EventProfileScored   EventType = "profileScored"
	EventComplete        EventType = "complete"
	EventError           EventType = "error"
)

// Event is one frame on the incremental stream. Status and error events
// carry Step/Message; candidatesFound carries Count; the rest carry typed
// payloads in Data. profileScored events arrive in completion order, which
// is not deterministic; the complete event's match list is fully sorted.
type Event struct {
	Type    EventType `json:"type"`
	Step    Step      `json:"step,omitempty"`
	Message string    `json:"message,omitempty"`
	Count   int       `json:"count,omitempty"`
	Data    any       `json:"data,omitempty"`
}

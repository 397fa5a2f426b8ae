package domain

import "time"

// DecisionMeta describes how the decision's intent was obtained, plus any
// structured details extracted from the turn.
type DecisionMeta struct {
	Source IntentSource
	Score  *float64
	// RequestedStart is a rental start date extracted from a booking
	// utterance, when one was present.
	RequestedStart *time.Time
}

// DialogueDecision is the complete, stateless output of one dialogue turn.
type DialogueDecision struct {
	Intent        Intent
	Answer        string
	Meta          DecisionMeta
	ShowOrderForm bool
}

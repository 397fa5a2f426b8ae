package domain

// Intent is the discrete category of user need detected in an utterance.
type Intent string

const (
	Intent_PriceSewa           Intent = "price_sewa"
	Intent_AskPrice            Intent = "ask_price"
	Intent_Booking             Intent = "booking"
	Intent_CheckStock          Intent = "check_stock"
	Intent_ClosingKeyword      Intent = "closing_keyword"
	Intent_ClosingConfirmation Intent = "closing_confirmation"
	Intent_Complaint           Intent = "complaint_keyword"
	Intent_Greeting            Intent = "greeting"
	Intent_Unknown             Intent = "unknown"

	// Synthetic intents produced by the orchestrator, never by the cascade.
	Intent_FinalClosing        Intent = "final_closing"
	Intent_ListAllEquipment    Intent = "list_all_equipment"
	Intent_UnknownOutOfContext Intent = "unknown_out_of_context"
)

// IntentSource identifies which cascade stage produced an intent result.
type IntentSource string

const (
	IntentSource_Keyword         IntentSource = "keyword"
	IntentSource_Semantic        IntentSource = "semantic"
	IntentSource_SemanticLow     IntentSource = "semantic_low"
	IntentSource_RandomForest    IntentSource = "random_forest"
	IntentSource_RandomForestLow IntentSource = "random_forest_low"
	IntentSource_None            IntentSource = "none"
)

// IntentResult is the outcome of one cascade run for one utterance.
// Score is nil for keyword hits and for the no-signal outcome.
// Example carries the nearest knowledge example on semantic hits.
type IntentResult struct {
	Intent  Intent
	Source  IntentSource
	Score   *float64
	Example *string
}

// Confident reports whether the result came from a stage that met its
// confidence threshold. Keyword rules are hand-curated and always confident.
func (r IntentResult) Confident() bool {
	switch r.Source {
	case IntentSource_Keyword, IntentSource_Semantic, IntentSource_RandomForest:
		return true
	}
	return false
}

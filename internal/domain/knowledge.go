package domain

import "context"

// KnowledgeExample is one labeled utterance of the intent training corpus.
// The set is loaded once at startup and immutable afterwards.
type KnowledgeExample struct {
	Text   string
	Intent Intent
}

// KnowledgeSource loads the intent example corpus from its external store.
// Rows missing either field are dropped by the source; an empty (or missing)
// corpus is not an error.
type KnowledgeSource interface {
	Load(ctx context.Context) ([]KnowledgeExample, error)
}

// FallbackKnowledgeExamples returns the minimal built-in corpus substituted
// when the external source yields nothing, so the semantic index is never
// empty.
func FallbackKnowledgeExamples() []KnowledgeExample {
	return []KnowledgeExample{
		{Text: "Berapa stok truk yang tersedia?", Intent: Intent_CheckStock},
		{Text: "stok truk masih ada ga", Intent: Intent_CheckStock},
		{Text: "Berapa harga excavator?", Intent: Intent_AskPrice},
		{Text: "Saya mau booking buldoser", Intent: Intent_Booking},
	}
}

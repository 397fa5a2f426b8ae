package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SenderRole identifies who produced a conversation turn.
type SenderRole string

const (
	SenderRole_User SenderRole = "user"
	SenderRole_AI   SenderRole = "ai"
)

// ClosingOfferPhrase is the phrase the assistant emits when offering to close
// the conversation. Its presence in the last AI turn is what puts the next
// turn into the awaiting-closing-confirmation state.
const ClosingOfferPhrase = "ada lagi yang bisa saya bantu"

// ConversationTurn is one persisted message of a user/assistant exchange.
type ConversationTurn struct {
	ID        uuid.UUID
	UserID    string
	Message   string
	Sender    SenderRole
	CreatedAt time.Time
}

// Validate checks the turn carries the fields the history table requires.
func (t ConversationTurn) Validate() error {
	if t.UserID == "" {
		return NewValidationErr("conversation turn user id cannot be empty")
	}
	if t.Message == "" {
		return NewValidationErr("conversation turn message cannot be empty")
	}
	if t.Sender != SenderRole_User && t.Sender != SenderRole_AI {
		return NewValidationErr("conversation turn sender must be user or ai")
	}
	return nil
}

// ConversationRepository persists and reads per-user dialogue history.
type ConversationRepository interface {
	// AppendTurn stores one turn. History is append-only.
	AppendTurn(ctx context.Context, turn ConversationTurn) error
	// RecentHistory returns up to limit turns for the user, newest first.
	RecentHistory(ctx context.Context, userID string, limit int) ([]ConversationTurn, error)
}

// DialogueState is the shallow per-turn state re-derived from history.
// There is no persisted session object; the state self-heals every call.
type DialogueState string

const (
	DialogueState_Normal                      DialogueState = "NORMAL"
	DialogueState_AwaitingClosingConfirmation DialogueState = "AWAITING_CLOSING_CONFIRMATION"
)

// DeriveDialogueState inspects the most recent AI turn in a newest-first
// history slice and reports whether the assistant is waiting for the user to
// confirm closing.
func DeriveDialogueState(history []ConversationTurn) DialogueState {
	for _, turn := range history {
		if turn.Sender != SenderRole_AI {
			continue
		}
		if strings.Contains(strings.ToLower(turn.Message), ClosingOfferPhrase) {
			return DialogueState_AwaitingClosingConfirmation
		}
		break
	}
	return DialogueState_Normal
}

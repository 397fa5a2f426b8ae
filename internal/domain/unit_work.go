package domain

import "context"

// UnitOfWork represents a unit of work for managing repositories and
// transactions. The orchestrator uses it to append the assistant turn and the
// outbox event atomically, which also serializes concurrent turns for the
// same user at the history table.
type UnitOfWork interface {
	// Conversation returns the repository for managing conversation history.
	Conversation() ConversationRepository
	// Outbox returns the repository for managing outbox events.
	Outbox() OutboxRepository
	// Execute runs a function within the context of a unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}

package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

var conversationFields = []string{
	"id",
	"user_id",
	"message",
	"sender",
	"created_at",
}

// ConversationRepository is a PostgreSQL implementation of
// domain.ConversationRepository. History is append-only; there are no
// updates or deletes.
type ConversationRepository struct {
	sb squirrel.StatementBuilderType
}

// NewConversationRepository creates a new instance of ConversationRepository.
func NewConversationRepository(br squirrel.BaseRunner) ConversationRepository {
	return ConversationRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// AppendTurn stores one conversation turn.
func (r ConversationRepository) AppendTurn(ctx context.Context, turn domain.ConversationTurn) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := turn.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err := r.sb.
		Insert("conversation_history").
		Columns(conversationFields...).
		Values(
			turn.ID,
			turn.UserID,
			turn.Message,
			turn.Sender,
			turn.CreatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// RecentHistory returns up to limit turns for the user, newest first.
func (r ConversationRepository) RecentHistory(ctx context.Context, userID string, limit int) ([]domain.ConversationTurn, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select(conversationFields...).
		From("conversation_history").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var turns []domain.ConversationTurn
	for rows.Next() {
		var turn domain.ConversationTurn
		err := rows.Scan(
			&turn.ID,
			&turn.UserID,
			&turn.Message,
			&turn.Sender,
			&turn.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return turns, nil
}

// InitConversationRepository is a Symbiont initializer for ConversationRepository.
type InitConversationRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ConversationRepository in the dependency container.
func (i InitConversationRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ConversationRepository](NewConversationRepository(i.DB))
	return ctx, nil
}

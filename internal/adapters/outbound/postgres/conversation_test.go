package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

func TestConversationRepository_AppendTurn(t *testing.T) {
	turn := domain.ConversationTurn{
		ID:        uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		UserID:    "wa-628111",
		Message:   "ada excavator?",
		Sender:    domain.SenderRole_User,
		CreatedAt: time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		turn      domain.ConversationTurn
		expect    func(sqlmock.Sqlmock)
		expectErr bool
	}{
		"success": {
			turn: turn,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO conversation_history (id,user_id,message,sender,created_at) VALUES ($1,$2,$3,$4,$5)").
					WithArgs(turn.ID, turn.UserID, turn.Message, turn.Sender, turn.CreatedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectErr: false,
		},
		"validation-error-empty-message": {
			turn: domain.ConversationTurn{
				ID:     uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
				UserID: "wa-628111",
				Sender: domain.SenderRole_User,
			},
			expect:    func(sqlmock.Sqlmock) {},
			expectErr: true,
		},
		"database-error": {
			turn: turn,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO conversation_history (id,user_id,message,sender,created_at) VALUES ($1,$2,$3,$4,$5)").
					WithArgs(turn.ID, turn.UserID, turn.Message, turn.Sender, turn.CreatedAt).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewConversationRepository(db)
			gotErr := repo.AppendTurn(context.Background(), tt.turn)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConversationRepository_RecentHistory(t *testing.T) {
	id1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	id2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	t1 := time.Date(2026, 2, 16, 12, 5, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		expected  []domain.ConversationTurn
		expectErr bool
	}{
		"success-newest-first": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(conversationFields).
					AddRow(id1, "wa-628111", "Baik, ada lagi yang bisa saya bantu?", domain.SenderRole_AI, t1).
					AddRow(id2, "wa-628111", "ada excavator?", domain.SenderRole_User, t2)
				m.ExpectQuery("SELECT id, user_id, message, sender, created_at FROM conversation_history WHERE user_id = $1 ORDER BY created_at DESC LIMIT 5").
					WithArgs("wa-628111").
					WillReturnRows(rows)
			},
			expected: []domain.ConversationTurn{
				{ID: id1, UserID: "wa-628111", Message: "Baik, ada lagi yang bisa saya bantu?", Sender: domain.SenderRole_AI, CreatedAt: t1},
				{ID: id2, UserID: "wa-628111", Message: "ada excavator?", Sender: domain.SenderRole_User, CreatedAt: t2},
			},
			expectErr: false,
		},
		"empty-history": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, user_id, message, sender, created_at FROM conversation_history WHERE user_id = $1 ORDER BY created_at DESC LIMIT 5").
					WithArgs("wa-628111").
					WillReturnRows(sqlmock.NewRows(conversationFields))
			},
			expected:  nil,
			expectErr: false,
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, user_id, message, sender, created_at FROM conversation_history WHERE user_id = $1 ORDER BY created_at DESC LIMIT 5").
					WithArgs("wa-628111").
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewConversationRepository(db)
			got, gotErr := repo.RecentHistory(context.Background(), "wa-628111", 5)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expected, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitConversationRepository_Initialize(t *testing.T) {
	i := &InitConversationRepository{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(t.Context())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.ConversationRepository]()
	assert.NoError(t, err)
}

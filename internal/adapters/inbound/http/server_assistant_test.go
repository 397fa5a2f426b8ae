package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukseskontraktor/rental-assistant/internal/common"
	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/usecases"
)

type stubHandleTurn struct {
	decision domain.DialogueDecision
	err      error
	gotCmd   usecases.TurnCommand
}

func (s *stubHandleTurn) Execute(ctx context.Context, cmd usecases.TurnCommand) (domain.DialogueDecision, error) {
	s.gotCmd = cmd
	return s.decision, s.err
}

func newTestServer(stub *stubHandleTurn) AssistantServer {
	return AssistantServer{
		Logger:            log.New(os.Stdout, "", log.LstdFlags),
		HandleTurnUseCase: stub,
	}
}

func TestAssistantServer_Query(t *testing.T) {
	tests := map[string]struct {
		body           string
		stub           *stubHandleTurn
		expectedStatus int
		expectedIntent string
		expectedCode   ErrorCode
	}{
		"success": {
			body: `{"user_id":"wa-628111","message":"ada excavator?"}`,
			stub: &stubHandleTurn{
				decision: domain.DialogueDecision{
					Intent: domain.Intent_CheckStock,
					Answer: "Excavator PC200 — stok saat ini: 3 unit.",
					Meta: domain.DecisionMeta{
						Source: domain.IntentSource_Keyword,
					},
				},
			},
			expectedStatus: http.StatusOK,
			expectedIntent: "check_stock",
		},
		"semantic-meta-passthrough": {
			body: `{"message":"kira kira sewa alat berat gimana ya"}`,
			stub: &stubHandleTurn{
				decision: domain.DialogueDecision{
					Intent: domain.Intent_AskPrice,
					Answer: "Berikut detail harga:",
					Meta: domain.DecisionMeta{
						Source: domain.IntentSource_Semantic,
						Score:  common.Ptr(0.73),
					},
				},
			},
			expectedStatus: http.StatusOK,
			expectedIntent: "ask_price",
		},
		"invalid-body": {
			body:           `{"message":`,
			stub:           &stubHandleTurn{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"validation-error": {
			body: `{"message":""}`,
			stub: &stubHandleTurn{
				err: domain.NewValidationErr("conversation turn message cannot be empty"),
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"internal-error": {
			body: `{"message":"ada excavator?"}`,
			stub: &stubHandleTurn{
				err: errors.New("db down"),
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCode_Internal,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			api := newTestServer(tt.stub)

			req := httptest.NewRequest(http.MethodPost, "/assistant/query", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			api.Query(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp QueryResp
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedIntent, resp.Intent)
				assert.Equal(t, tt.stub.decision.Answer, resp.Answer)
				assert.Equal(t, string(tt.stub.decision.Meta.Source), resp.Meta.Source)
				return
			}

			var errResp ErrorResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.expectedCode, errResp.Error.Code)
		})
	}
}

func TestAssistantServer_Query_ForwardsCommand(t *testing.T) {
	stub := &stubHandleTurn{
		decision: domain.DialogueDecision{Intent: domain.Intent_Greeting, Answer: "Halo!"},
	}
	api := newTestServer(stub)

	req := httptest.NewRequest(http.MethodPost, "/assistant/query", strings.NewReader(`{"user_id":"wa-1","message":"halo"}`))
	rec := httptest.NewRecorder()

	api.Query(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecases.TurnCommand{UserID: "wa-1", Message: "halo"}, stub.gotCmd)
}

func TestAssistantServer_Health(t *testing.T) {
	api := newTestServer(&stubHandleTurn{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	api.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

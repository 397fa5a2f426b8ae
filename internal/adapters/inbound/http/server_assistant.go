package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/usecases"
)

// Query handles one assistant turn.
func (api AssistantServer) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	decision, err := api.HandleTurnUseCase.Execute(r.Context(), usecases.TurnCommand{
		UserID:  req.UserID,
		Message: req.Message,
	})
	if err != nil {
		api.Logger.Printf("Error handling turn: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toQueryResp(decision))
}

// Health reports liveness.
func (api AssistantServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toQueryResp(decision domain.DialogueDecision) QueryResp {
	return QueryResp{
		Intent:        string(decision.Intent),
		Answer:        decision.Answer,
		ShowOrderForm: decision.ShowOrderForm,
		Meta: QueryMeta{
			Source:         string(decision.Meta.Source),
			Score:          decision.Meta.Score,
			RequestedStart: decision.Meta.RequestedStart,
		},
	}
}

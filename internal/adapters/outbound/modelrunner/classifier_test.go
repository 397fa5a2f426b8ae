package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

func createClassifyServer(t *testing.T, status int, resp ClassifyResponse) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/engines/v1/classify", r.URL.Path)

		var req ClassifyRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Embedding)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestClassifier_Classify(t *testing.T) {
	tests := map[string]struct {
		status    int
		resp      ClassifyResponse
		expected  domain.ClassPrediction
		expectErr bool
	}{
		"picks-argmax": {
			status: http.StatusOK,
			resp: ClassifyResponse{
				Predictions: []ClassPrediction{
					{Label: "ask_price", Probability: 0.21},
					{Label: "booking", Probability: 0.67},
					{Label: "check_stock", Probability: 0.12},
				},
			},
			expected: domain.ClassPrediction{
				Intent:      domain.Intent_Booking,
				Probability: 0.67,
			},
			expectErr: false,
		},
		"empty-predictions": {
			status:    http.StatusOK,
			resp:      ClassifyResponse{},
			expectErr: true,
		},
		"server-error": {
			status:    http.StatusBadGateway,
			resp:      ClassifyResponse{},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := createClassifyServer(t, tt.status, tt.resp)
			defer srv.Close()

			classifier := NewClassifier(NewAPIClient(srv.URL, "", srv.Client()), "ai/intent-random-forest")
			got, err := classifier.Classify(context.Background(), []float64{0.1, 0.2})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

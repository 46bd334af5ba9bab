package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mood_backend/internal/feature/insights/usecase"
	jwtmw "mood_backend/internal/platform/jwt"
)

// mockInsightsUsecase is a mock implementation of the InsightsUsecase interface.
type mockInsightsUsecase struct {
	SummarizeFunc func(ctx context.Context, accountID uint, days int) (*usecase.Insight, error)
}

func (m *mockInsightsUsecase) Summarize(ctx context.Context, accountID uint, days int) (*usecase.Insight, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, accountID, days)
	}
	return &usecase.Insight{Summary: "mock summary"}, nil
}

// setAccountID simulates the JWT middleware having authenticated the request.
func setAccountID(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != 0 {
			c.Set(jwtmw.ContextAccountID, id)
		}
		c.Next()
	}
}

func TestInsightsHandler_Summarize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		accountID         uint
		query             string
		mockSummarizeFunc func(ctx context.Context, accountID uint, days int) (*usecase.Insight, error)
		expectedStatus    int
		expectedBody      gin.H
	}{
		{
			name:      "success: summary with custom window",
			accountID: 1,
			query:     "?days=30",
			mockSummarizeFunc: func(ctx context.Context, accountID uint, days int) (*usecase.Insight, error) {
				if days != 30 {
					t.Errorf("expected days=30, got %d", days)
				}
				return &usecase.Insight{Summary: "A calm month.", EntryCount: 12}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"summary": "A calm month.", "entry_count": float64(12)},
		},
		{
			name:      "success: missing days falls back to default",
			accountID: 1,
			query:     "",
			mockSummarizeFunc: func(ctx context.Context, accountID uint, days int) (*usecase.Insight, error) {
				if days != usecase.DefaultDays {
					t.Errorf("expected default days, got %d", days)
				}
				return &usecase.Insight{Summary: "A steady week.", EntryCount: 3}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"summary": "A steady week.", "entry_count": float64(3)},
		},
		{
			name:              "failure: unauthenticated request",
			accountID:         0,
			query:             "",
			mockSummarizeFunc: nil, // Usecase is not called
			expectedStatus:    http.StatusUnauthorized,
			expectedBody:      gin.H{"error": "unauthorized"},
		},
		{
			name:      "failure: analyzer error maps to bad gateway",
			accountID: 1,
			query:     "",
			mockSummarizeFunc: func(ctx context.Context, accountID uint, days int) (*usecase.Insight, error) {
				return nil, errors.New("quota exceeded")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   gin.H{"error": "insight generation failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockInsightsUsecase{SummarizeFunc: tt.mockSummarizeFunc}
			handler := NewInsightsHandler(mockUC)

			router := gin.New()
			router.GET("/insights", setAccountID(tt.accountID), handler.Summarize)

			req, _ := http.NewRequest(http.MethodGet, "/insights"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

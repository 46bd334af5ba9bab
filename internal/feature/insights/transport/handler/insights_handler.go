// Package handler はinsightsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mood_backend/internal/api"
	"mood_backend/internal/feature/insights/usecase"
	jwtmw "mood_backend/internal/platform/jwt"
)

// InsightsUsecase はインサイト生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type InsightsUsecase interface {
	Summarize(ctx context.Context, accountID uint, days int) (*usecase.Insight, error)
}

// InsightsHandler は気分インサイトのHTTPリクエストを処理します。
type InsightsHandler struct {
	uc InsightsUsecase
}

// NewInsightsHandler は指定されたusecaseでInsightsHandlerの新しいインスタンスを生成します。
func NewInsightsHandler(uc InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Summarize は直近のエントリのサマリーをJSONで返します。
//
// エンドポイント例:
// GET /insights?days=7
func (h *InsightsHandler) Summarize(c *gin.Context) {
	accountID := c.GetUint(jwtmw.ContextAccountID)
	if accountID == 0 {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	// 未指定の場合はデフォルト値を使用
	daysStr := c.DefaultQuery("days", strconv.Itoa(usecase.DefaultDays))
	days, _ := strconv.Atoi(daysStr)

	insight, err := h.uc.Summarize(c.Request.Context(), accountID, days)
	if err != nil {
		slog.Error("insight generation failed", "error", err, "account_id", accountID)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "insight generation failed"})
		return
	}

	c.JSON(http.StatusOK, api.InsightsResponse{Summary: insight.Summary, EntryCount: insight.EntryCount})
}

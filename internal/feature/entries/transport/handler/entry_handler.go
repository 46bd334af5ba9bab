// Package handler はentriesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mood_backend/internal/api"
	"mood_backend/internal/feature/entries/domain/entity"
	"mood_backend/internal/feature/entries/usecase"
	jwtmw "mood_backend/internal/platform/jwt"
)

// EntriesUsecase はエントリ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type EntriesUsecase interface {
	Append(ctx context.Context, entry entity.Entry) (uint, error)
	ListByAccount(ctx context.Context, accountID uint) ([]entity.Entry, error)
}

// EntryHandler は気分記録エントリのHTTPリクエストを処理します。
type EntryHandler struct {
	uc EntriesUsecase
}

// NewEntryHandler は指定されたusecaseでEntryHandlerの新しいインスタンスを生成します。
func NewEntryHandler(uc EntriesUsecase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// Append は新規エントリ保存APIエンドポイントを処理します。
// アカウントIDはJWTミドルウェアがコンテキストに設定したものを使用し、
// リクエストボディからは受け取りません（アカウント間の分離のため）。
//
// エンドポイント例:
// POST /entries {"timestamp": "2024-01-02 09:00", "mood": "meh", "energy": "Ok"}
func (h *EntryHandler) Append(c *gin.Context) {
	var req api.NewEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("entry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	accountID := c.GetUint(jwtmw.ContextAccountID)
	if accountID == 0 {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	// 元のフォームと同様、timestamp未指定時は現在時刻を使用
	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = time.Now().Format(entity.TimestampLayout)
	}

	id, err := h.uc.Append(c.Request.Context(), entity.Entry{
		AccountID: accountID,
		Timestamp: timestamp,
		Mood:      string(req.Mood),
		Energy:    string(req.Energy),
		Weather:   string(req.Weather),
		Sleep:     string(req.Sleep),
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}
		slog.Error("entry append failed", "error", err, "account_id", accountID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "storage failure"})
		return
	}

	c.JSON(http.StatusCreated, api.EntryCreatedResponse{Id: id})
}

// List は履歴取得APIエンドポイントを処理します。
// 認証済みアカウントの全エントリを新しい順で返します。
//
// エンドポイント例:
// GET /entries
func (h *EntryHandler) List(c *gin.Context) {
	accountID := c.GetUint(jwtmw.ContextAccountID)
	if accountID == 0 {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	entries, err := h.uc.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		slog.Error("entry list failed", "error", err, "account_id", accountID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "storage failure"})
		return
	}

	// データをフォーマット
	out := make([]api.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.EntryResponse{
			Id:        e.ID,
			Timestamp: e.Timestamp,
			Mood:      e.Mood,
			Energy:    e.Energy,
			Weather:   e.Weather,
			Sleep:     e.Sleep,
			Notes:     e.Notes,
		})
	}

	c.JSON(http.StatusOK, out)
}

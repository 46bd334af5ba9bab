// Package usecase は気分記録エントリ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"mood_backend/internal/feature/entries/domain/entity"
)

// ErrInvalidEntry is returned when a required field (timestamp, mood or energy) is empty.
var ErrInvalidEntry = errors.New("timestamp, mood and energy are required")

// EntryRepository はエントリデータの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EntryRepository interface {
	// Create は新しいエントリをストレージに永続化し、IDを採番します。
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByAccountID は指定アカウントの全エントリをtimestamp降順で検索します。
	FindByAccountID(ctx context.Context, accountID uint) ([]entity.Entry, error)
}

// entriesUsecase はエントリ操作のユースケースを定義します。
type entriesUsecase struct {
	entries EntryRepository
}

// NewEntriesUsecase はentriesUsecaseの新しいインスタンスを生成します。
func NewEntriesUsecase(entries EntryRepository) *entriesUsecase {
	return &entriesUsecase{entries: entries}
}

// Append は1件の不変なエントリを永続化し、採番されたIDを返します。
// mood、energy、timestampが空の場合、永続化を試みる前にErrInvalidEntryを返します。
// 列挙値の検証はトランスポート層の責務です（ここでは空チェックのみ）。
// 同一timestampの重複は許容されます。
func (u *entriesUsecase) Append(ctx context.Context, entry entity.Entry) (uint, error) {
	if entry.Timestamp == "" || entry.Mood == "" || entry.Energy == "" {
		return 0, ErrInvalidEntry
	}

	if err := u.entries.Create(ctx, &entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// ListByAccount は指定アカウントの全エントリをtimestamp降順（新しい順）で返します。
// エントリが0件の場合はエラーではなく空スライスを返します。
// キャッシュは持たず、呼び出しごとに永続化された現在の状態を読み直します。
func (u *entriesUsecase) ListByAccount(ctx context.Context, accountID uint) ([]entity.Entry, error) {
	return u.entries.FindByAccountID(ctx, accountID)
}

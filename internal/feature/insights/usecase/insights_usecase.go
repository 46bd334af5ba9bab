// Package usecase は気分インサイト生成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mood_backend/internal/feature/entries/domain/entity"
)

const (
	// DefaultDays はインサイト対象期間のデフォルト日数です。
	DefaultDays = 7
	// MaxDays はインサイト対象期間の最大日数です。
	MaxDays = 90
	// maxNoteChars はプロンプトに含めるノートの最大文字数です。
	maxNoteChars = 200
)

// EntryReader はエントリデータの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EntryReader interface {
	// ListByAccount は指定アカウントの全エントリをtimestamp降順で返します。
	ListByAccount(ctx context.Context, accountID uint) ([]entity.Entry, error)
}

// MoodAnalyzer は記録サマリーの生成を抽象化します。
type MoodAnalyzer interface {
	// Analyze はプロンプトからサマリーを生成します。
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Insight はインサイト生成の結果を表します。
type Insight struct {
	Summary    string
	EntryCount int
}

// insightsUsecase はインサイト生成のユースケースを定義します。
// 読み取り専用で、永続化された記録を変更することはありません。
type insightsUsecase struct {
	entries  EntryReader
	analyzer MoodAnalyzer
}

// NewInsightsUsecase はinsightsUsecaseの新しいインスタンスを生成します。
func NewInsightsUsecase(entries EntryReader, analyzer MoodAnalyzer) *insightsUsecase {
	return &insightsUsecase{entries: entries, analyzer: analyzer}
}

// Summarize は直近days日分のエントリからサマリーを生成します。
// 対象期間にエントリがない場合、アナライザーを呼ばずに定型メッセージを返します。
func (u *insightsUsecase) Summarize(ctx context.Context, accountID uint, days int) (*Insight, error) {
	if days <= 0 || days > MaxDays {
		days = DefaultDays
	}

	all, err := u.entries.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	recent := make([]entity.Entry, 0, len(all))
	for _, e := range all {
		ts, parseErr := time.Parse(entity.TimestampLayout, e.Timestamp)
		if parseErr != nil {
			// 旧形式のtimestampは期間判定できないためスキップ
			continue
		}
		if ts.After(cutoff) {
			recent = append(recent, e)
		}
	}

	if len(recent) == 0 {
		return &Insight{Summary: "No journal entries in this period.", EntryCount: 0}, nil
	}

	summary, err := u.analyzer.Analyze(ctx, buildPrompt(recent, days))
	if err != nil {
		return nil, fmt.Errorf("failed to generate insight: %w", err)
	}

	return &Insight{Summary: summary, EntryCount: len(recent)}, nil
}

// buildPrompt は直近のエントリからアナライザー用プロンプトを組み立てます。
func buildPrompt(entries []entity.Entry, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a supportive journaling assistant. Summarize the mood and energy trends in the user's journal entries from the last %d days in 3-4 sentences. Be concrete and kind, and mention one pattern worth paying attention to.\n\nEntries (most recent first):\n", days)
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: mood=%s energy=%s", e.Timestamp, e.Mood, e.Energy)
		if e.Sleep != "" {
			fmt.Fprintf(&b, " sleep=%s", e.Sleep)
		}
		if e.Weather != "" {
			fmt.Fprintf(&b, " weather=%s", e.Weather)
		}
		if e.Notes != "" {
			notes := e.Notes
			if len(notes) > maxNoteChars {
				notes = notes[:maxNoteChars]
			}
			fmt.Fprintf(&b, " notes=%q", notes)
		}
		b.WriteString("\n")
	}
	return b.String()
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mood_backend/internal/feature/entries/domain/entity"
)

// mockEntryReader is a mock implementation of the EntryReader interface.
type mockEntryReader struct {
	ListByAccountFunc func(ctx context.Context, accountID uint) ([]entity.Entry, error)
}

func (m *mockEntryReader) ListByAccount(ctx context.Context, accountID uint) ([]entity.Entry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	return []entity.Entry{}, nil
}

// mockMoodAnalyzer is a mock implementation of the MoodAnalyzer interface.
type mockMoodAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockMoodAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, prompt)
	}
	return "mock summary", nil
}

// recentEntry builds an entry timestamped the given number of days ago.
func recentEntry(daysAgo int, mood, energy string) entity.Entry {
	return entity.Entry{
		AccountID: 1,
		Timestamp: time.Now().AddDate(0, 0, -daysAgo).Format(entity.TimestampLayout),
		Mood:      mood,
		Energy:    energy,
	}
}

func TestInsightsUsecase_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes recent entries", func(t *testing.T) {
		var capturedPrompt string
		reader := &mockEntryReader{
			ListByAccountFunc: func(ctx context.Context, accountID uint) ([]entity.Entry, error) {
				return []entity.Entry{
					recentEntry(1, "good", "High"),
					recentEntry(3, "meh", "Ok"),
				}, nil
			},
		}
		analyzer := &mockMoodAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string) (string, error) {
				capturedPrompt = prompt
				return "You had a steady week.", nil
			},
		}

		uc := NewInsightsUsecase(reader, analyzer)
		insight, err := uc.Summarize(ctx, 1, 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if insight.Summary != "You had a steady week." {
			t.Errorf("unexpected summary: %q", insight.Summary)
		}
		if insight.EntryCount != 2 {
			t.Errorf("expected 2 entries counted, got %d", insight.EntryCount)
		}
		if !strings.Contains(capturedPrompt, "mood=good energy=High") {
			t.Errorf("prompt missing entry line: %q", capturedPrompt)
		}
	})

	t.Run("entries outside the window are excluded", func(t *testing.T) {
		reader := &mockEntryReader{
			ListByAccountFunc: func(ctx context.Context, accountID uint) ([]entity.Entry, error) {
				return []entity.Entry{
					recentEntry(2, "good", "High"),
					recentEntry(30, "bad", "Low"),
				}, nil
			},
		}

		uc := NewInsightsUsecase(reader, &mockMoodAnalyzer{})
		insight, err := uc.Summarize(ctx, 1, 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if insight.EntryCount != 1 {
			t.Errorf("expected 1 entry in window, got %d", insight.EntryCount)
		}
	})

	t.Run("no entries returns canned summary without calling analyzer", func(t *testing.T) {
		analyzer := &mockMoodAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string) (string, error) {
				t.Error("Analyze should not be called with no entries")
				return "", nil
			},
		}

		uc := NewInsightsUsecase(&mockEntryReader{}, analyzer)
		insight, err := uc.Summarize(ctx, 1, 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if insight.Summary != "No journal entries in this period." {
			t.Errorf("unexpected summary: %q", insight.Summary)
		}
		if insight.EntryCount != 0 {
			t.Errorf("expected 0 entries, got %d", insight.EntryCount)
		}
	})

	t.Run("invalid days falls back to default", func(t *testing.T) {
		var capturedPrompt string
		reader := &mockEntryReader{
			ListByAccountFunc: func(ctx context.Context, accountID uint) ([]entity.Entry, error) {
				return []entity.Entry{recentEntry(1, "good", "High")}, nil
			},
		}
		analyzer := &mockMoodAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string) (string, error) {
				capturedPrompt = prompt
				return "summary", nil
			},
		}

		uc := NewInsightsUsecase(reader, analyzer)
		_, err := uc.Summarize(ctx, 1, -5)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(capturedPrompt, "last 7 days") {
			t.Errorf("expected default window in prompt, got: %q", capturedPrompt)
		}
	})

	t.Run("unparseable timestamps are skipped", func(t *testing.T) {
		reader := &mockEntryReader{
			ListByAccountFunc: func(ctx context.Context, accountID uint) ([]entity.Entry, error) {
				return []entity.Entry{
					{AccountID: 1, Timestamp: "yesterday-ish", Mood: "good", Energy: "Ok"},
					recentEntry(1, "happy", "High"),
				}, nil
			},
		}

		uc := NewInsightsUsecase(reader, &mockMoodAnalyzer{})
		insight, err := uc.Summarize(ctx, 1, 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if insight.EntryCount != 1 {
			t.Errorf("expected only the parseable entry, got %d", insight.EntryCount)
		}
	})

	t.Run("reader failure propagates", func(t *testing.T) {
		expectedErr := errors.New("connection lost")
		reader := &mockEntryReader{
			ListByAccountFunc: func(ctx context.Context, accountID uint) ([]entity.Entry, error) {
				return nil, expectedErr
			},
		}

		uc := NewInsightsUsecase(reader, &mockMoodAnalyzer{})
		_, err := uc.Summarize(ctx, 1, 7)

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})

	t.Run("analyzer failure is wrapped", func(t *testing.T) {
		analyzerErr := errors.New("quota exceeded")
		reader := &mockEntryReader{
			ListByAccountFunc: func(ctx context.Context, accountID uint) ([]entity.Entry, error) {
				return []entity.Entry{recentEntry(1, "good", "High")}, nil
			},
		}
		analyzer := &mockMoodAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", analyzerErr
			},
		}

		uc := NewInsightsUsecase(reader, analyzer)
		_, err := uc.Summarize(ctx, 1, 7)

		if !errors.Is(err, analyzerErr) {
			t.Errorf("expected wrapped analyzer error, got: %v", err)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Run("long notes are truncated", func(t *testing.T) {
		entries := []entity.Entry{
			{
				Timestamp: "2024-01-02 09:00",
				Mood:      "good",
				Energy:    "Ok",
				Notes:     strings.Repeat("a", maxNoteChars+50),
			},
		}

		prompt := buildPrompt(entries, 7)

		if strings.Contains(prompt, strings.Repeat("a", maxNoteChars+1)) {
			t.Error("notes should be truncated in the prompt")
		}
	})

	t.Run("optional fields appear only when set", func(t *testing.T) {
		entries := []entity.Entry{
			{Timestamp: "2024-01-02 09:00", Mood: "good", Energy: "Ok"},
		}

		prompt := buildPrompt(entries, 7)

		if strings.Contains(prompt, "sleep=") || strings.Contains(prompt, "weather=") {
			t.Errorf("empty optional fields should be omitted: %q", prompt)
		}
	})
}

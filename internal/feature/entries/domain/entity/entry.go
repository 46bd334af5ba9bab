// Package entity defines the domain models for the entries feature.
package entity

// TimestampLayout is the canonical layout for an entry's timestamp.
// Lexical order of this layout matches chronological order, so it doubles
// as the sort key format.
const TimestampLayout = "2006-01-02 15:04"

// Entry represents one immutable mood journal record belonging to exactly
// one account. Entries are never edited or deleted once written.
type Entry struct {
	ID        uint   // Unique identifier, assigned by the store at creation
	AccountID uint   // Owning account; entries are never visible across accounts
	Timestamp string // User-supplied date+time the mood applies to (not the write time)
	Mood      string // One of: happy, good, meh, bad, awful
	Energy    string // 5-point ordered scale: Exhausted, Low, Ok, High, Energized
	Weather   string // Optional: sunny, cloudy, rain, snow; empty when absent
	Sleep     string // Optional: Excellent, Good, Fair, Fragmented, Poor; empty when absent
	Notes     string // Optional free-form text, may contain markdown
}

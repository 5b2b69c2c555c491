package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/runnerr0/lifelog/internal/storage"
)

// MatchKind reports how a free-form literal was interpreted.
type MatchKind string

const (
	MatchDate    MatchKind = "date"
	MatchKeyword MatchKind = "keyword"
	MatchRange   MatchKind = "range"
	MatchAll     MatchKind = "all"
)

// Selection is the result of one listing request.
type Selection struct {
	Label  string
	Kind   MatchKind
	Events []storage.Event
}

// Lookup interprets literal as a date prefix first and falls back to a
// keyword search when no entry carries that date.
func Lookup(ctx context.Context, store storage.Store, literal string) (*Selection, error) {
	events, err := store.FetchByDatePrefix(ctx, literal)
	if err != nil {
		return nil, fmt.Errorf("fetch by date: %w", err)
	}
	if len(events) > 0 {
		return &Selection{Label: literal, Kind: MatchDate, Events: events}, nil
	}

	events, err = store.Search(ctx, literal)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return &Selection{Label: literal, Kind: MatchKeyword, Events: events}, nil
}

// selectDay lists entries recorded on the calendar day of t.
func selectDay(ctx context.Context, store storage.Store, label string, t time.Time) (*Selection, error) {
	day := t.Format(storage.DateLayout)
	events, err := store.FetchByDatePrefix(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", label, err)
	}
	return &Selection{Label: day, Kind: MatchDate, Events: events}, nil
}

func selectToday(ctx context.Context, store storage.Store, now time.Time) (*Selection, error) {
	return selectDay(ctx, store, "today", now)
}

func selectYesterday(ctx context.Context, store storage.Store, now time.Time) (*Selection, error) {
	return selectDay(ctx, store, "yesterday", now.AddDate(0, 0, -1))
}

func selectAll(ctx context.Context, store storage.Store) (*Selection, error) {
	events, err := store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch all: %w", err)
	}
	return &Selection{Label: "all", Kind: MatchAll, Events: events}, nil
}

func selectFrom(ctx context.Context, store storage.Store, startDate string) (*Selection, error) {
	events, err := store.FetchFrom(ctx, startDate)
	if err != nil {
		return nil, fmt.Errorf("fetch from %s: %w", startDate, err)
	}
	return &Selection{Label: startDate, Kind: MatchRange, Events: events}, nil
}

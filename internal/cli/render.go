package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/runnerr0/lifelog/internal/storage"
)

type jsonEvent struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

type jsonSelection struct {
	Selection string      `json:"selection"`
	Match     MatchKind   `json:"match"`
	Count     int         `json:"count"`
	Events    []jsonEvent `json:"events"`
}

func toJSONEvent(e storage.Event) jsonEvent {
	return jsonEvent{ID: e.ID, Timestamp: e.Stamp(), Text: e.Text}
}

func toJSONSelection(sel *Selection) jsonSelection {
	out := jsonSelection{
		Selection: sel.Label,
		Match:     sel.Kind,
		Count:     len(sel.Events),
		Events:    make([]jsonEvent, len(sel.Events)),
	}
	for i, e := range sel.Events {
		out.Events[i] = toJSONEvent(e)
	}
	return out
}

// formatEvent renders one entry as "[ID:n][YYYY-MM-DD HH:MM:SS] text".
func formatEvent(e storage.Event) string {
	return fmt.Sprintf("[ID:%d][%s] %s", e.ID, e.Stamp(), e.Text)
}

// writeEvents prints one line per entry, or the none message when empty.
func writeEvents(w io.Writer, events []storage.Event, none string) {
	if len(events) == 0 {
		fmt.Fprintln(w, none)
		return
	}
	for _, e := range events {
		fmt.Fprintln(w, formatEvent(e))
	}
}

func writeJSON(w io.Writer, indent string, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

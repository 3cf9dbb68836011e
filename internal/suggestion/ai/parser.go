package ai

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"

	"notes-to-tasks/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

var errNoTaskList = errors.New("no task list found in reply")

// Item is one task as a model writes it, before validation.
type Item struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate"`
	Tags        []string `json:"tags"`
}

type itemList struct {
	Tasks       *[]Item `json:"tasks"`
	Suggestions *[]Item `json:"suggestions"`
}

// ParseReply pulls the task list out of a model reply. It accepts a JSON
// array embedded in prose or a code fence, an object wrapping a "tasks" or
// "suggestions" array, or a single task object, either of them possibly
// surrounded by prose. A closed array or object with broken syntax is
// repaired once; truncated output is never completed.
func ParseReply(reply string) ([]Item, error) {
	text := strings.TrimSpace(reply)
	if m := codeFencePattern.FindStringSubmatch(text); len(m) > 1 {
		text = strings.TrimSpace(m[1])
	}

	if items, ok := firstArray(text); ok {
		return items, nil
	}

	if items, ok := wholeObject(text); ok {
		return items, nil
	}

	objectSpan := firstObjectSpan(text)
	if objectSpan != "" {
		if items, ok := wholeObject(objectSpan); ok {
			return items, nil
		}
	}

	if span := firstClosedSpan(text); span != "" {
		if items, ok := repairArray(span, span == text); ok {
			return items, nil
		}
	}

	if objectSpan != "" {
		if repaired, err := jsonrepair.JSONRepair(objectSpan); err == nil {
			if items, ok := wholeObject(repaired); ok {
				return items, nil
			}
		}
	}

	return nil, errNoTaskList
}

// repairArray repairs span and decodes it as a task array. Like firstArray,
// an empty result only counts when the span is the whole reply.
func repairArray(span string, whole bool) ([]Item, bool) {
	repaired, err := jsonrepair.JSONRepair(span)
	if err != nil {
		return nil, false
	}
	var items []Item
	if err := json.UnmarshalFromString(repaired, &items); err != nil {
		return nil, false
	}
	if len(items) == 0 && !whole {
		return nil, false
	}
	return items, true
}

// firstArray returns the first balanced [...] span that decodes as an array
// of objects. An empty array only counts when it is the whole reply, so a
// "tags": [] inside a single object is not mistaken for an empty task list.
func firstArray(text string) ([]Item, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		end := matchingBracket(text, i)
		if end < 0 {
			continue
		}

		span := text[i : end+1]
		var items []Item
		if err := json.UnmarshalFromString(span, &items); err != nil {
			continue
		}
		if len(items) == 0 && span != text {
			continue
		}
		return items, true
	}
	return nil, false
}

func wholeObject(text string) ([]Item, bool) {
	if !strings.HasPrefix(text, "{") {
		return nil, false
	}

	var list itemList
	if err := json.UnmarshalFromString(text, &list); err == nil {
		if list.Tasks != nil {
			return *list.Tasks, true
		}
		if list.Suggestions != nil {
			return *list.Suggestions, true
		}
	}

	var item Item
	if err := json.UnmarshalFromString(text, &item); err != nil {
		return nil, false
	}
	if item.Title == "" && item.Priority == "" {
		return nil, false
	}
	return []Item{item}, true
}

// firstClosedSpan returns text from the first '[' to its matching ']', or to
// the last ']' when brackets do not balance. Empty when no ']' follows.
func firstClosedSpan(text string) string {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return ""
	}
	if end := matchingBracket(text, start); end >= 0 {
		return text[start : end+1]
	}
	end := strings.LastIndexByte(text, ']')
	if end <= start {
		return ""
	}
	return text[start : end+1]
}

// firstObjectSpan returns the first balanced {...} span, or "".
func firstObjectSpan(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	end := matchingClose(text, start, '{', '}')
	if end < 0 {
		return ""
	}
	return text[start : end+1]
}

// matchingBracket returns the index of the ']' closing the '[' at start,
// skipping brackets inside JSON strings, or -1.
func matchingBracket(text string, start int) int {
	return matchingClose(text, start, '[', ']')
}

func matchingClose(text string, start int, openCh, closeCh byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// toSuggestion validates item. A due date that cannot be read is dropped
// and the item kept.
func (e *Extractor) toSuggestion(ctx context.Context, item Item, now time.Time) (model.TaskSuggestion, error) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		return model.TaskSuggestion{}, fmt.Errorf("title is empty")
	}

	priority, ok := model.ParsePriority(item.Priority)
	if !ok {
		return model.TaskSuggestion{}, fmt.Errorf("invalid priority %q", item.Priority)
	}

	s := model.TaskSuggestion{
		Title:       title,
		Description: strings.TrimSpace(item.Description),
		Priority:    priority,
		Tags:        cleanTags(item.Tags),
	}

	if raw := strings.TrimSpace(item.DueDate); raw != "" {
		due, err := e.parseDueDate(raw, now)
		if err != nil {
			e.l.Warnf(ctx, "ai.toSuggestion: dropping due date %q of %q: %v", raw, title, err)
		} else {
			s.DueDate = &due
		}
	}

	return s, nil
}

// parseDueDate accepts RFC3339, a bare date (end of that day) or a relative
// phrase such as "tomorrow" (end of that day).
func (e *Extractor) parseDueDate(raw string, now time.Time) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	if t, err := time.ParseInLocation(dateOnlyLayout, raw, e.dates.Location()); err == nil {
		return e.dates.EndOfDay(t), nil
	}

	start, err := e.dates.Parse(raw, now)
	if err != nil {
		return time.Time{}, err
	}
	return e.dates.EndOfDay(start), nil
}

func cleanTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, t := range raw {
		t = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(t), "#@"))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

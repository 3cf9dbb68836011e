package usecase

import (
	"regexp"

	"notes-to-tasks/internal/model"
)

// categoryHints are tried in order; the first category whose pattern matches
// the title is used.
var categoryHints = []struct {
	tag     string
	pattern *regexp.Regexp
}{
	{"health", regexp.MustCompile(`(?i)\b(?:dr\.?|doctor|dentist|clinic|hospital|pharmacy|medicine|meds|gym|workout|health|appointment)\b`)},
	{"finance", regexp.MustCompile(`(?i)\b(?:pay|bill|bills|bank|rent|tax|taxes|invoice|budget|insurance|salary|loan)\b`)},
	{"work", regexp.MustCompile(`(?i)\b(?:meeting|report|client|boss|office|presentation|slides|deadline|colleague|team|standup)\b`)},
	{"project", regexp.MustCompile(`(?i)\b(?:project|milestone|release|launch|feature|prototype|roadmap)\b`)},
	{"home", regexp.MustCompile(`(?i)\b(?:clean|laundry|repair|fix|garden|kitchen|dishes|vacuum|plumber|house|home)\b`)},
	{"errands", regexp.MustCompile(`(?i)\b(?:buy|pick\s+up|grocery|groceries|store|shop|shopping|post\s+office|milk|bread|return)\b`)},
}

// enrich returns copies of suggestions with a filler description and, when
// a suggestion has no tags, one category tag. Title, priority and due date
// are left as they are.
func enrich(suggestions []model.TaskSuggestion, description string) []model.TaskSuggestion {
	enriched := make([]model.TaskSuggestion, len(suggestions))
	for i, s := range suggestions {
		if s.Description == "" {
			s.Description = description
		}
		if len(s.Tags) == 0 {
			s.Tags = []string{categorize(s.Title)}
		} else {
			s.Tags = append([]string(nil), s.Tags...)
		}
		enriched[i] = s
	}
	return enriched
}

func categorize(title string) string {
	for _, h := range categoryHints {
		if h.pattern.MatchString(title) {
			return h.tag
		}
	}
	return defaultTag
}

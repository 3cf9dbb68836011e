package heuristic

import (
	"strings"
	"unicode"

	"notes-to-tasks/internal/model"
)

// Classification is the verdict on a single line.
type Classification struct {
	IsTask   bool
	Priority model.Priority
	Title    string
}

// Classify decides whether line reads as a task and, if so, its priority and title.
func Classify(line string) Classification {
	line = strings.TrimSpace(line)
	if line == "" {
		return Classification{}
	}

	normalized := apostrophes.Replace(line)
	bulleted := bulletPattern.MatchString(line)
	if !bulleted && !indicatorPattern.MatchString(normalized) {
		return Classification{}
	}

	title := cleanTitle(line)
	if !hasAlphanumeric(title) {
		return Classification{}
	}

	return Classification{
		IsTask:   true,
		Priority: classifyPriority(normalized),
		Title:    title,
	}
}

func classifyPriority(line string) model.Priority {
	switch {
	case highPriorityPattern.MatchString(line):
		return model.PriorityHigh
	case mediumPriorityPattern.MatchString(line):
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// cleanTitle strips the bullet and checkbox, drops trailing tags and
// unmarks inline ones.
func cleanTitle(line string) string {
	title := bulletPattern.ReplaceAllString(line, "")
	title = checkboxPattern.ReplaceAllString(title, "")

	fields := strings.Fields(title)
	for len(fields) > 0 && tagTokenPattern.MatchString(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	title = strings.Join(fields, " ")

	return inlineTagMarker.ReplaceAllString(title, "${1}${2}")
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

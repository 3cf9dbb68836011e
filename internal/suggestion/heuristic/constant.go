package heuristic

import (
	"regexp"
	"strings"
)

// Name is reported by Extractor.Name.
const Name = "heuristic"

var (
	// Indicators match at the start of a word, so "Buying" counts but "target" does not.
	indicatorPattern = regexp.MustCompile(`(?i)\b(?:todo|to\s+do|to-do|task|remember|don't\s+forget|need\s+to|should|must|call|email|buy|get|make|schedule|plan|write|finish|complete)`)

	highPriorityPattern   = regexp.MustCompile(`(?i)\b(?:urgent|asap|immediately|important|critical)|!{2,}`)
	mediumPriorityPattern = regexp.MustCompile(`(?i)\b(?:soon|this\s+week|next\s+week)`)

	bulletPattern   = regexp.MustCompile(`^[-•*]\s*`)
	checkboxPattern = regexp.MustCompile(`^\[[ xX]\]\s*`)

	tagPattern      = regexp.MustCompile(`(?:^|[^\w])([#@])(\w+)`)
	tagTokenPattern = regexp.MustCompile(`^[#@]\w+$`)
	inlineTagMarker = regexp.MustCompile(`(^|[^\w])[#@](\w+)`)
)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

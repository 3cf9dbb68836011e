package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})(?:[/.\-](\d{4}|\d{2}))?\b`)
	monthDayPattern    = regexp.MustCompile(`(?i)\b([a-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`)
	dayMonthPattern    = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]{3,9})\b\.?(?:,?\s+(\d{4})\b)?`)
	relativePattern    = regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|next\s+week|in\s+(\d{1,3})\s+(days?|weeks?)|monday|tuesday|tues|wednesday|thursday|thurs|thur|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun)\b`)
	clockPattern       = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?:\s*(am|pm))?\b`)

	// A dotted pair followed by a unit or another number is a quantity, not D.M.
	quantitySuffixPattern = regexp.MustCompile(`(?i)^(?:\.\d|\s*(?:%|x\b|(?:kg|g|mg|lbs?|oz|ml|l|litres?|liters?|km|cm|mm|m|mi|miles?|ft|hrs?|hours?|mins?|minutes?|kilos?|pounds?|pcs|pieces?|units?|usd|eur|percent)\b))`)
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Resolver finds the due date a line of free text refers to.
type Resolver struct {
	location   *time.Location
	monthFirst bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMonthFirst reads numeric dates as M/D instead of D/M.
func WithMonthFirst() Option {
	return func(r *Resolver) { r.monthFirst = true }
}

// NewResolver creates a Resolver that interprets dates in the given IANA timezone.
func NewResolver(timezone string, opts ...Option) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	r := &Resolver{location: loc}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Location returns the timezone the resolver works in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve returns the due date mentioned on line relative to now.
// An explicit calendar date wins over relative words; among relative words
// the leftmost one wins. The result is never earlier than now.
func (r *Resolver) Resolve(line string, now time.Time) (Resolution, bool) {
	now = now.In(r.location)

	res, ok := r.resolveExplicit(line, now)
	if !ok {
		res, ok = r.resolveRelative(line, now)
	}
	if !ok {
		return Resolution{}, false
	}

	if m := r.findClock(line); m != "" {
		res.HasTime = true
		res.Clock = m
	}
	return res, true
}

// isQuantity reports whether a numeric match like "2.5" in "2.5 kg" is a
// decimal amount. Only the dotted form without a year qualifies.
func isQuantity(line string, loc []int) bool {
	if line[loc[3]] != '.' || loc[6] >= 0 {
		return false
	}
	return quantitySuffixPattern.MatchString(line[loc[1]:])
}

type candidate struct {
	index int
	match string
	at    time.Time
}

func (r *Resolver) resolveExplicit(line string, now time.Time) (Resolution, bool) {
	var best *candidate
	consider := func(c candidate) {
		if best == nil || c.index < best.index {
			best = &c
		}
	}

	for _, loc := range numericDatePattern.FindAllStringSubmatchIndex(line, -1) {
		if isQuantity(line, loc) {
			continue
		}
		a, _ := strconv.Atoi(line[loc[2]:loc[3]])
		b, _ := strconv.Atoi(line[loc[4]:loc[5]])
		day, month := a, b
		if r.monthFirst {
			day, month = b, a
		}
		year := 0
		if loc[6] >= 0 {
			year = parseYear(line[loc[6]:loc[7]])
		}
		if at, ok := r.project(year, month, day, now); ok {
			consider(candidate{index: loc[0], match: line[loc[0]:loc[1]], at: at})
			break
		}
	}

	for _, loc := range monthDayPattern.FindAllStringSubmatchIndex(line, -1) {
		month := monthFromWord(line[loc[2]:loc[3]])
		if month == 0 {
			continue
		}
		day, _ := strconv.Atoi(line[loc[4]:loc[5]])
		year := 0
		if loc[6] >= 0 {
			year = parseYear(line[loc[6]:loc[7]])
		}
		if at, ok := r.project(year, month, day, now); ok {
			consider(candidate{index: loc[0], match: line[loc[0]:loc[1]], at: at})
			break
		}
	}

	for _, loc := range dayMonthPattern.FindAllStringSubmatchIndex(line, -1) {
		month := monthFromWord(line[loc[4]:loc[5]])
		if month == 0 {
			continue
		}
		day, _ := strconv.Atoi(line[loc[2]:loc[3]])
		year := 0
		if loc[6] >= 0 {
			year = parseYear(line[loc[6]:loc[7]])
		}
		if at, ok := r.project(year, month, day, now); ok {
			consider(candidate{index: loc[0], match: line[loc[0]:loc[1]], at: at})
			break
		}
	}

	if best == nil {
		return Resolution{}, false
	}
	return Resolution{At: best.at, Kind: KindExplicit, Match: best.match}, true
}

func (r *Resolver) resolveRelative(line string, now time.Time) (Resolution, bool) {
	loc := relativePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return Resolution{}, false
	}
	match := line[loc[0]:loc[1]]
	word := strings.Join(strings.Fields(strings.ToLower(match)), " ")

	switch {
	case word == "today" || word == "tonight":
		return Resolution{At: now, Kind: KindRelative, Match: match}, true
	case word == "tomorrow":
		return Resolution{At: now.AddDate(0, 0, 1), Kind: KindRelative, Match: match}, true
	case word == "next week":
		return Resolution{At: now.AddDate(0, 0, 7), Kind: KindRelative, Match: match}, true
	case strings.HasPrefix(word, "in "):
		n, _ := strconv.Atoi(line[loc[4]:loc[5]])
		unit := strings.ToLower(line[loc[6]:loc[7]])
		if strings.HasPrefix(unit, "week") {
			n *= 7
		}
		return Resolution{At: now.AddDate(0, 0, n), Kind: KindRelative, Match: match}, true
	}

	target, ok := weekdayNames[word]
	if !ok {
		return Resolution{}, false
	}
	return Resolution{
		At:    now.AddDate(0, 0, daysUntil(now.Weekday(), target)),
		Kind:  KindWeekday,
		Match: match,
	}, true
}

// project builds the calendar date keeping now's clock time and moves it
// forward by whole years until it is not in the past. A year of 0 means
// the text carried none.
func (r *Resolver) project(year, month, day int, now time.Time) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year == 0 {
		// Validate against a leap year so 29/2 survives until projection.
		if !validDate(2000, month, day) {
			return time.Time{}, false
		}
		year = now.Year()
	} else if !validDate(year, month, day) {
		return time.Time{}, false
	} else if year < now.Year() {
		year = now.Year()
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.location)
	for i := 0; i < 9; i++ {
		y := year + i
		if !validDate(y, month, day) {
			continue
		}
		candidate := time.Date(y, time.Month(month), day, 0, 0, 0, 0, r.location)
		if candidate.Before(today) {
			continue
		}
		if candidate.Equal(today) {
			return now, true
		}
		return time.Date(y, time.Month(month), day, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), r.location), true
	}
	return time.Time{}, false
}

func (r *Resolver) findClock(line string) string {
	for _, m := range clockPattern.FindAllStringSubmatch(line, -1) {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if minute > 59 {
			continue
		}
		switch strings.ToLower(m[3]) {
		case "am":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour == 12 {
				hour = 0
			}
		case "pm":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour != 12 {
				hour += 12
			}
		default:
			if hour > 23 {
				continue
			}
		}
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	return ""
}

func validDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func parseYear(s string) int {
	y, _ := strconv.Atoi(s)
	if len(s) == 2 {
		y += 2000
	}
	return y
}

// monthFromWord maps "sep", "sept" or "september" to 9. Words that are not a
// prefix of a month name map to 0.
func monthFromWord(word string) int {
	word = strings.ToLower(word)
	if len(word) < 3 {
		return 0
	}
	for i, name := range monthNames {
		if strings.HasPrefix(name, word) {
			return i + 1
		}
	}
	return 0
}

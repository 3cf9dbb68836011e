package heuristic

// ExtractTags returns the #word and @word tokens on line without their marker,
// in first-occurrence order and without duplicates. The result is never nil.
func ExtractTags(line string) []string {
	tags := []string{}
	seen := make(map[string]struct{})

	for _, m := range tagPattern.FindAllStringSubmatchIndex(line, -1) {
		tag := line[m[4]:m[5]]
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Package keyword extracts noisy, cheap-to-compute keyword and participant
// signal from transcript and note text. Both functions are deliberately
// lossy: InsightEngine treats overlap, not exact match, as signal.
package keyword

import (
	"regexp"
	"sort"
	"strings"
)

var nonAlnumSpace = regexp.MustCompile(`[^a-z0-9 \t\n]`)

var attendeesLinePattern = regexp.MustCompile(`(?im)^\s*attendees?\s*:\s*(.+)$`)

var speakerLinePattern = regexp.MustCompile(`(?m)^([a-z]{2,15}):`)

// Keywords lowercases text, replaces every character outside [a-z0-9 \t\n]
// with a space, splits on whitespace, discards tokens of length <= 3 or in
// the stop-word set, counts frequency, and returns up to the top 20
// distinct tokens by descending count.
func Keywords(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonAlnumSpace.ReplaceAllString(lowered, " ")
	tokens := strings.Fields(cleaned)

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if len(tok) <= 3 || isStopWord(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 20 {
		order = order[:20]
	}
	return order
}

// People extracts a deduplicated union of two noisy heuristics: an
// "Attendees:"-prefixed line split on [,;&], and speaker-prefix lines of
// the form "name:" at the start of a line. Names of length outside [2,19]
// are discarded.
func People(text string) []string {
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		name = strings.TrimSpace(name)
		if len(name) < 2 || len(name) > 19 {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		names = append(names, name)
	}

	if m := attendeesLinePattern.FindStringSubmatch(text); m != nil {
		for _, entry := range splitAttendees(m[1]) {
			fields := strings.Fields(entry)
			if len(fields) > 0 {
				add(fields[0])
			}
		}
	}

	for _, m := range speakerLinePattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}

	return names
}

func splitAttendees(line string) []string {
	replaced := line
	for _, sep := range []string{";", "&"} {
		replaced = strings.ReplaceAll(replaced, sep, ",")
	}
	parts := strings.Split(replaced, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

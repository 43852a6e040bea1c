package api

import "strings"

// splitLines turns a textarea value into one entry per non-empty line,
// trimming surrounding whitespace.
func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// splitComma splits a comma-delimited field, trimming each entry. Empty
// entries are kept as-is so "Go,,React" round-trips the way it was typed.
func splitComma(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// collectImageURLs gathers the four fixed image slots in order, skipping the
// ones left blank.
func collectImageURLs(slots ...string) []string {
	urls := []string{}
	for _, slot := range slots {
		slot = strings.TrimSpace(slot)
		if slot != "" {
			urls = append(urls, slot)
		}
	}
	return urls
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

package playground

import "strings"

// ParseTags splits a raw comma-delimited tag string. Each piece is
// trimmed and empty pieces are dropped, so consecutive commas collapse
// instead of producing placeholder entries.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// JoinTags is the inverse of ParseTags for display and re-editing.
// JoinTags(ParseTags(s)) parsed again yields the same tag list.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

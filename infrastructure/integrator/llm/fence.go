package llm

import "strings"

// StripCodeFence removes a surrounding ``` or ```json wrapper from model output.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 {
		tag := strings.TrimSpace(s[:idx])
		if tag == "" || strings.EqualFold(tag, "json") {
			s = s[idx+1:]
		}
	} else if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

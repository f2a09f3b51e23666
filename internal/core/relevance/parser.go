package relevance

import "strings"

// ParseRelevance maps the model's free-text reply back onto the candidate
// list positionally: candidate i is relevant iff reply line i, trimmed and
// lowercased, contains "true". Anything else on a line is a negative signal
// for that position, including ambiguous tokens. A short reply excludes the
// unmatched trailing candidates; extra trailing lines are ignored. This
// never errors: the reply is best-effort by contract.
func ParseRelevance(response string, candidates []Candidate) []Candidate {
	lines := strings.Split(response, "\n")

	relevant := make([]Candidate, 0, len(candidates))
	for i := 0; i < len(lines) && i < len(candidates); i++ {
		line := strings.ToLower(strings.TrimSpace(lines[i]))
		if strings.Contains(line, "true") {
			relevant = append(relevant, candidates[i])
		}
	}
	return relevant
}

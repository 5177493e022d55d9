package matching

import "strings"

// skillSynonyms maps alternate spellings to a canonical skill name.
// Small fixed table, constructed once; treat as read-only.
var skillSynonyms = map[string]string{
	"javascript": "javascript",
	"js":         "javascript",
	"ecmascript": "javascript",
	"node.js":    "javascript",
	"nodejs":     "javascript",

	"react":    "react",
	"reactjs":  "react",
	"react.js": "react",

	"python": "python",
	"py":     "python",

	"typescript": "typescript",
	"ts":         "typescript",

	"css":  "css",
	"css3": "css",

	"html":  "html",
	"html5": "html",
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SkillsMatch reports whether two skill strings refer to the same skill:
// equal after normalization, one contains the other, or both resolve to
// the same synonym-table entry. Substring containment is deliberately
// loose ("Java" matches "JavaScript").
func SkillsMatch(a, b string) bool {
	a = normalizeSkill(a)
	b = normalizeSkill(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	ca, aok := skillSynonyms[a]
	cb, bok := skillSynonyms[b]
	return aok && bok && ca == cb
}

// LocationsMatch compares two free-text locations: case-insensitive
// equality or substring containment either way.
func LocationsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

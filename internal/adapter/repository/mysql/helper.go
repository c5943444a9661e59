package mysql

import "strings"

// containsPattern builds a case-insensitive LIKE pattern; pair it with ESCAPE '!'.
func containsPattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

package helpers

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikePattern escapes LIKE metacharacters in a user-supplied search
// term and wraps it for substring matching. Repositories receive the result
// as a plain bind parameter.
func EscapeLikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

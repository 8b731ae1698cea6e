package lang

import "strings"

// Quote wraps s in single quotes so it round-trips through Tokenize as one
// token, escaping embedded single quotes with the standard shell idiom
// ' -> '\'' (close quote, escaped quote, reopen quote). Used by `foreach`
// to safely splice field values into a sub-pipeline line.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"|\\") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

package main

import (
	"strconv"
	"strings"
	"time"

	"pagequery/internal/sqlparam"
)

// parseArg converts a command-line argument into the most specific bind value:
// null, int64, float64, bool, RFC3339 time, else the string itself.
// Wrap an argument in single quotes to force a string.
func parseArg(s string) any {
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		return s[1 : len(s)-1]
	}
	if strings.EqualFold(s, "null") {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true", "TRUE", "True":
		return true
	case "false", "FALSE", "False":
		return false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return s
}

// parseArgs converts positional arguments into a parameter list.
func parseArgs(args []string) (sqlparam.List, error) {
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = parseArg(a)
	}
	return sqlparam.FromArgs(values...)
}

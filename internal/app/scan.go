package app

import (
	"regexp"
	"strings"
)

var importStatement = regexp.MustCompile(`(?m)^[ \t]*@import[ \t]+([^;\n]+)`)

// ScanImports returns the targets of the @import statements in a stylesheet,
// in source order. Plain CSS imports (url(), remote URLs and .css files) are
// left to the browser and skipped, as are trailing media queries.
func ScanImports(src []byte) []string {
	var out []string
	for _, m := range importStatement.FindAllSubmatch(src, -1) {
		for _, part := range splitTargets(string(m[1])) {
			target := importTarget(part)
			if target == "" || isPlainCSSImport(target) {
				continue
			}
			out = append(out, target)
		}
	}
	return out
}

// splitTargets splits an import list on the commas outside quotes and
// parentheses.
func splitTargets(list string) []string {
	var (
		parts []string
		quote rune
		depth int
		start int
	)
	for i, r := range list {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, list[start:i])
			start = i + 1
		}
	}
	return append(parts, list[start:])
}

// importTarget returns the first quoted string of part, or its first word
// when unquoted. A url() target is returned whole.
func importTarget(part string) string {
	part = strings.TrimSpace(part)
	if part == "" {
		return ""
	}
	if q := part[0]; q == '"' || q == '\'' {
		rest := part[1:]
		if end := strings.IndexByte(rest, q); end >= 0 {
			return rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if strings.HasPrefix(part, "url(") {
		return part
	}
	return strings.Fields(part)[0]
}

func isPlainCSSImport(target string) bool {
	switch {
	case strings.HasPrefix(target, "url("),
		strings.HasPrefix(target, "http://"),
		strings.HasPrefix(target, "https://"),
		strings.HasPrefix(target, "//"),
		strings.HasSuffix(target, ".css"):
		return true
	default:
		return false
	}
}

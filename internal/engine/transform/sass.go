package transform

import (
	"regexp"
	"strings"
)

var identifier = regexp.MustCompile(`^-?[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Unquoted, these would stop being plain strings.
var reservedWords = map[string]struct{}{
	"true": {}, "false": {}, "null": {}, "and": {}, "or": {}, "not": {},
}

func writeSass(b *strings.Builder, v *value) {
	switch v.kind {
	case kindNull:
		b.WriteString("null")
	case kindBool, kindNumber:
		b.WriteString(v.scalar)
	case kindString:
		if isColor(v.scalar) {
			b.WriteString(v.scalar)
			return
		}
		writeQuoted(b, v.scalar)
	case kindList:
		b.WriteString("(")
		for i, item := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeSass(b, item)
		}
		if len(v.items) == 1 {
			b.WriteString(",")
		}
		b.WriteString(")")
	case kindMap:
		b.WriteString("(")
		for i, key := range v.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			writeKey(b, key)
			b.WriteString(": ")
			writeSass(b, v.items[i])
		}
		b.WriteString(")")
	}
}

func writeKey(b *strings.Builder, key string) {
	if bareKey(key) {
		b.WriteString(key)
		return
	}
	writeQuoted(b, key)
}

func bareKey(key string) bool {
	if !identifier.MatchString(key) {
		return false
	}
	lower := strings.ToLower(key)
	if _, ok := reservedWords[lower]; ok {
		return false
	}
	_, ok := namedColors[lower]
	return !ok
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\a `)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

package transform

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var bracketSwap = strings.NewReplacer("{", "(", "[", "(", "}", ")", "]", ")")

// lexical applies the legacy text rewrite. Brackets inside string values are
// swapped as well, so keys or values containing them come out altered.
func lexical(raw []byte, path, name string) (string, error) {
	data := string(raw)

	if isYAML(path) {
		root, err := decodeYAML(raw)
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := writeJSON(&buf, root); err != nil {
			return "", err
		}
		data = buf.String()
	} else if !json.Valid(raw) {
		return "", errors.New("invalid JSON")
	}

	out := "$" + name + ":" + bracketSwap.Replace(data)
	out = strings.TrimSuffix(out, "\n")
	out += ";"

	return unquoteColors(out), nil
}

// writeJSON serializes v compactly, keeping map key order and leaving HTML
// characters unescaped.
func writeJSON(buf *bytes.Buffer, v *value) error {
	switch v.kind {
	case kindNull:
		buf.WriteString("null")
	case kindBool, kindNumber:
		buf.WriteString(v.scalar)
	case kindString:
		return writeJSONString(buf, v.scalar)
	case kindList:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case kindMap:
		buf.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, v.items[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

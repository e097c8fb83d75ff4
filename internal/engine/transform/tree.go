package transform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

type kind int

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindList
	kindMap
)

// value is a decoded document. Maps keep their source key order.
type value struct {
	kind   kind
	scalar string
	keys   []string
	items  []*value
}

func decode(raw []byte, path string) (*value, error) {
	if isYAML(path) {
		return decodeYAML(raw)
	}
	return decodeJSON(raw)
}

func decodeJSON(raw []byte) (*value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := readJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func readJSON(dec *json.Decoder) (*value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := &value{kind: kindMap}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("invalid object key %v", kt)
				}
				item, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				m.keys = append(m.keys, key)
				m.items = append(m.items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			l := &value{kind: kindList}
			for dec.More() {
				item, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				l.items = append(l.items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return l, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		return &value{kind: kindNumber, scalar: t.String()}, nil
	case string:
		return &value{kind: kindString, scalar: t}, nil
	case bool:
		return &value{kind: kindBool, scalar: strconv.FormatBool(t)}, nil
	case nil:
		return &value{kind: kindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// maxYAMLValues caps the decoded size of a YAML document once aliases are
// expanded.
const maxYAMLValues = 1_000_000

func decodeYAML(raw []byte) (*value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	w := &yamlWalker{expanding: make(map[*yaml.Node]bool)}
	return w.walk(&doc)
}

// yamlWalker converts a node tree, expanding aliases in place.
type yamlWalker struct {
	expanding map[*yaml.Node]bool
	values    int
}

func (w *yamlWalker) walk(n *yaml.Node) (*value, error) {
	w.values++
	if w.values > maxYAMLValues {
		return nil, fmt.Errorf("YAML document expands beyond %d values", maxYAMLValues)
	}

	switch n.Kind {
	case 0:
		return &value{kind: kindNull}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &value{kind: kindNull}, nil
		}
		return w.walk(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("unknown YAML alias %q", n.Value)
		}
		if w.expanding[n.Alias] {
			return nil, fmt.Errorf("recursive YAML alias %q", n.Value)
		}
		w.expanding[n.Alias] = true
		v, err := w.walk(n.Alias)
		delete(w.expanding, n.Alias)
		return v, err
	case yaml.MappingNode:
		m := &value{kind: kindMap}
		for i := 0; i+1 < len(n.Content); i += 2 {
			item, err := w.walk(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.keys = append(m.keys, n.Content[i].Value)
			m.items = append(m.items, item)
		}
		return m, nil
	case yaml.SequenceNode:
		l := &value{kind: kindList}
		for _, c := range n.Content {
			item, err := w.walk(c)
			if err != nil {
				return nil, err
			}
			l.items = append(l.items, item)
		}
		return l, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func fromYAMLScalar(n *yaml.Node) (*value, error) {
	switch n.ShortTag() {
	case "!!null":
		return &value{kind: kindNull}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return &value{kind: kindBool, scalar: strconv.FormatBool(b)}, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of int64 range; Sass reads the literal digits just as well.
			return &value{kind: kindNumber, scalar: n.Value}, nil
		}
		return &value{kind: kindNumber, scalar: strconv.FormatInt(i, 10)}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &value{kind: kindNull}, nil
		}
		return &value{kind: kindNumber, scalar: strconv.FormatFloat(f, 'f', -1, 64)}, nil
	default:
		return &value{kind: kindString, scalar: n.Value}, nil
	}
}

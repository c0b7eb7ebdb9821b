package career

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type entryKind uint8

const (
	kindNull entryKind = iota
	kindText
	kindObject
)

// Entry — элемент списка в payload: либо строка, либо объект с полями.
// Нулевое значение соответствует null.
type Entry struct {
	kind   entryKind
	text   string
	fields map[string]string
}

// Text builds a string entry.
func Text(s string) Entry { return Entry{kind: kindText, text: s} }

// Object builds an object entry. Fields are copied.
func Object(fields map[string]string) Entry {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Entry{kind: kindObject, fields: cp}
}

func (e Entry) IsNull() bool   { return e.kind == kindNull }
func (e Entry) IsText() bool   { return e.kind == kindText }
func (e Entry) IsObject() bool { return e.kind == kindObject }

// String returns the text of a string entry and "" otherwise.
func (e Entry) String() string {
	if e.kind == kindText {
		return e.text
	}
	return ""
}

// Field returns the value of the first present key.
// A key holding an empty string counts as present.
func (e Entry) Field(keys ...string) (string, bool) {
	if e.kind != kindObject {
		return "", false
	}
	for _, k := range keys {
		if v, ok := e.fields[k]; ok {
			return v, true
		}
	}
	return "", false
}

// FieldOr is Field with a default.
func (e Entry) FieldOr(def string, keys ...string) string {
	if v, ok := e.Field(keys...); ok {
		return v
	}
	return def
}

// truthy mirrors how list filters treat entries: null and "" are dropped.
func (e Entry) truthy() bool {
	switch e.kind {
	case kindText:
		return e.text != ""
	case kindObject:
		return true
	default:
		return false
	}
}

func (e Entry) clone() Entry {
	if e.kind != kindObject {
		return e
	}
	return Object(e.fields)
}

func (e Entry) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case kindText:
		return json.Marshal(e.text)
	case kindObject:
		if e.fields == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(e.fields)
	default:
		return []byte("null"), nil
	}
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*e = Entry{}
		return nil
	}
	switch data[0] {
	case 'n':
		*e = Entry{}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = Text(s)
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		fields := make(map[string]string, len(raw))
		for k, v := range raw {
			if s, ok := scalarText(v); ok {
				fields[k] = s
			}
		}
		*e = Entry{kind: kindObject, fields: fields}
	case '[':
		*e = Entry{kind: kindObject, fields: map[string]string{}}
	default:
		lit := string(data)
		if lit == "false" || lit == "0" {
			*e = Entry{}
			return nil
		}
		*e = Text(lit)
	}
	return nil
}

// scalarText renders a field value; null counts as absent.
func scalarText(v json.RawMessage) (string, bool) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || string(v) == "null" {
		return "", false
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return string(v), true
}

func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*e = Entry{}
			return nil
		}
		*e = Text(node.Value)
	case yaml.MappingNode:
		fields := make(map[string]string, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			if v.Kind == yaml.ScalarNode && v.Tag != "!!null" {
				fields[k.Value] = v.Value
			}
		}
		*e = Entry{kind: kindObject, fields: fields}
	default:
		return fmt.Errorf("career: unsupported entry at line %d", node.Line)
	}
	return nil
}

package document

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON is a JSON document kept as raw bytes. Edits replace only the bytes of
// the addressed value, so indentation, key order and escapes elsewhere stay
// exactly as they were.
type JSON struct {
	data []byte
}

// ParseJSON checks that data is a single well-formed JSON value.
func ParseJSON(data []byte) (*JSON, error) {
	if !gjson.ValidBytes(data) {
		return nil, &Error{Kind: KindFormat, Err: errors.New("invalid JSON")}
	}
	return &JSON{data: append([]byte(nil), data...)}, nil
}

// LoadJSON reads and parses the JSON document at path.
func LoadJSON(path string) (*JSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: path, Err: err}
	}
	doc, err := ParseJSON(data)
	if err != nil {
		var derr *Error
		if errors.As(err, &derr) {
			derr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// GetString returns the string at field.
func (d *JSON) GetString(field string) (string, error) {
	v, _, err := d.lookup(field)
	if err != nil {
		return "", err
	}
	if v.Type != gjson.String {
		return "", formatError(field, "expected string, found %s", typeName(v))
	}
	return v.Str, nil
}

// Type returns the JSON type at field: object, array, string, number,
// bool or null.
func (d *JSON) Type(field string) (string, error) {
	v, _, err := d.lookup(field)
	if err != nil {
		return "", err
	}
	return typeName(v), nil
}

// Has reports whether field resolves to a value.
func (d *JSON) Has(field string) bool {
	_, _, err := d.lookup(field)
	return err == nil
}

// SetString replaces the value at field with a string. The field must
// already exist; a document without it lacks the expected shape.
func (d *JSON) SetString(field, value string) error {
	_, path, err := d.lookup(field)
	if err != nil {
		return err
	}
	out, err := sjson.SetBytes(d.data, path, value)
	if err != nil {
		return &Error{Kind: KindFormat, Field: field, Err: err}
	}
	d.data = out
	return nil
}

// Bytes returns the document as it would be saved.
func (d *JSON) Bytes() []byte {
	return append([]byte(nil), d.data...)
}

// Save writes the document to path, keeping the mode of an existing file.
func (d *JSON) Save(path string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, d.data, mode); err != nil {
		return &Error{Kind: KindIO, Path: path, Err: err}
	}
	return nil
}

// lookup resolves field one step at a time so that a key never matches an
// array and an index never matches an object key. It returns the value and
// the equivalent gjson/sjson path.
func (d *JSON) lookup(field string) (gjson.Result, string, error) {
	steps, err := parseFieldPath(field)
	if err != nil {
		return gjson.Result{}, "", err
	}

	cur := gjson.ParseBytes(d.data)
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		if s.isIdx {
			if !cur.IsArray() {
				return gjson.Result{}, "", formatError(field, "cannot index %s", typeName(cur))
			}
			elems := cur.Array()
			if s.index >= len(elems) {
				return gjson.Result{}, "", &Error{Kind: KindFormat, Field: field, Err: fmt.Errorf("%w: index %d out of range (len %d)", ErrFieldNotFound, s.index, len(elems))}
			}
			cur = elems[s.index]
			parts = append(parts, strconv.Itoa(s.index))
			continue
		}

		if !cur.IsObject() {
			return gjson.Result{}, "", formatError(field, "expected object, found %s", typeName(cur))
		}
		key := escapeKey(s.key)
		next := cur.Get(key)
		if !next.Exists() {
			return gjson.Result{}, "", &Error{Kind: KindFormat, Field: field, Err: fmt.Errorf("%w: %q", ErrFieldNotFound, s.key)}
		}
		cur = next
		parts = append(parts, key)
	}
	return cur, strings.Join(parts, "."), nil
}

// escapeKey escapes the characters gjson and sjson treat as path syntax.
func escapeKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !isPlainKeyByte(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isPlainKeyByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == ':' || c > '~'
}

func typeName(v gjson.Result) string {
	switch v.Type {
	case gjson.JSON:
		if v.IsArray() {
			return "array"
		}
		return "object"
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	default:
		return "null"
	}
}

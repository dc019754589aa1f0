package jsonline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object whose members keep their parse order.
type Object = orderedmap.OrderedMap[string, any]

const indentUnit = "  "

var errTrailingData = errors.New("trailing data after JSON value")

// Parse decodes exactly one JSON value from s.
func Parse(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingData
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := orderedmap.New[string, any]()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, not string", keyTok)
			}
			member, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, member)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			elem, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

// PrettyPrint renders value with two-space indentation. The boolean is false
// when the value holds something that cannot be serialized.
func PrettyPrint(value any) (string, bool) {
	var b strings.Builder
	if err := writeValue(&b, value, 0); err != nil {
		return "", false
	}
	return b.String(), true
}

func writeValue(b *strings.Builder, value any, depth int) error {
	switch v := value.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case json.Number:
		if v == "" {
			return errors.New("empty number")
		}
		b.WriteString(v.String())
	case string:
		return writeString(b, v)
	case *Object:
		return writeObject(b, v, depth)
	case []any:
		return writeArray(b, v, depth)
	default:
		// Plain Go values (float64, int, map[string]any) built by callers.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		reparsed, err := Parse(string(raw))
		if err != nil {
			return err
		}
		return writeValue(b, reparsed, depth)
	}
	return nil
}

func writeObject(b *strings.Builder, obj *Object, depth int) error {
	if obj == nil {
		b.WriteString("null")
		return nil
	}
	if obj.Len() == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteString("{\n")
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		writeIndent(b, depth+1)
		if err := writeString(b, pair.Key); err != nil {
			return err
		}
		b.WriteString(": ")
		if err := writeValue(b, pair.Value, depth+1); err != nil {
			return err
		}
		if pair.Next() != nil {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	writeIndent(b, depth)
	b.WriteByte('}')
	return nil
}

func writeArray(b *strings.Builder, arr []any, depth int) error {
	if len(arr) == 0 {
		b.WriteString("[]")
		return nil
	}
	b.WriteString("[\n")
	for i, elem := range arr {
		writeIndent(b, depth+1)
		if err := writeValue(b, elem, depth+1); err != nil {
			return err
		}
		if i < len(arr)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	writeIndent(b, depth)
	b.WriteByte(']')
	return nil
}

func writeString(b *strings.Builder, s string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	b.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return nil
}

func writeIndent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString(indentUnit)
	}
}

// Equal reports whether two parsed values are structurally equal. Object
// members must match in order.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok {
			return false
		}
		if av == nil || bv == nil {
			return av == bv
		}
		if av.Len() != bv.Len() {
			return false
		}
		pa, pb := av.Oldest(), bv.Oldest()
		for pa != nil && pb != nil {
			if pa.Key != pb.Key || !Equal(pa.Value, pb.Value) {
				return false
			}
			pa, pb = pa.Next(), pb.Next()
		}
		return pa == nil && pb == nil
	default:
		return false
	}
}

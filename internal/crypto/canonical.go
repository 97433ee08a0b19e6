// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Value is a JSON value that can be brought into canonical form.
// It is a closed set: [String], [Number], [Bool], [Object] and [Array].
// JSON null is not representable.
type Value interface {
	// Interface converts the value back to plain Go types
	// (string, float64, bool, map[string]any, []any).
	Interface() any

	isValue()
}

type (
	String string
	Number float64
	Bool   bool
	Object map[string]Value
	Array  []Value
)

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Object) isValue() {}
func (Array) isValue()  {}

func (s String) Interface() any { return string(s) }
func (n Number) Interface() any { return float64(n) }
func (b Bool) Interface() any   { return bool(b) }

func (o Object) Interface() any {
	m := make(map[string]any, len(o))
	for k, v := range o {
		if v == nil {
			m[k] = nil
			continue
		}
		m[k] = v.Interface()
	}
	return m
}

func (a Array) Interface() any {
	s := make([]any, len(a))
	for i, v := range a {
		if v != nil {
			s[i] = v.Interface()
		}
	}
	return s
}

// ValueOf converts plain Go data (as produced by encoding/json, or built by
// hand) into a Value.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null", ErrSerialization)
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int32:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint:
		return Number(t), nil
	case uint32:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrSerialization, t.String(), err)
		}
		return Number(f), nil
	case map[string]any:
		obj := make(Object, len(t))
		for k, elem := range t {
			val, err := ValueOf(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = val
		}
		return obj, nil
	case map[string]string:
		obj := make(Object, len(t))
		for k, elem := range t {
			obj[k] = String(elem)
		}
		return obj, nil
	case []any:
		arr := make(Array, len(t))
		for i, elem := range t {
			val, err := ValueOf(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = val
		}
		return arr, nil
	case []string:
		arr := make(Array, len(t))
		for i, elem := range t {
			arr[i] = String(elem)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrSerialization, v)
	}
}

// ParseValue decodes a single JSON document into a Value.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrSerialization)
	}

	return ValueOf(raw)
}

// Canonicalize returns the canonical JSON encoding of v: object members
// sorted by the UTF-16 code units of their keys, no insignificant
// whitespace, shortest round-trip number formatting and minimal string
// escaping. Structurally equal values always encode to the same bytes.
func Canonicalize(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case nil:
		return fmt.Errorf("%w: null", ErrSerialization)
	case String:
		return writeString(buf, string(t))
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(t)))
		return nil
	case Number:
		s, err := formatNumber(float64(t))
		if err != nil {
			return err
		}
		buf.WriteString(s)
		return nil
	case Array:
		buf.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case Object:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, compareUTF16)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeCanonical(buf, t[k]); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("%w: unsupported value %T", ErrSerialization, v)
	}
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

// formatNumber renders f the way ECMAScript's Number.prototype.toString
// does for finite values.
func formatNumber(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: non-finite number %v", ErrSerialization, f)
	}
	if f == 0 {
		return "0", nil
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits, nil
	}

	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

const hexDigits = "0123456789abcdef"

func writeString(buf *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8 in string", ErrSerialization)
	}

	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if c < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xf])
				continue
			}
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
	return nil
}

// Package mapper translates between the camelCase wire fields of the API and
// the snake_case storage columns through per-entity allow-lists.
package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"exam-admin/internal/domain"
)

// Kind decides how a wire value is converted into a column value.
type Kind int

const (
	// Text is a nullable string. JSON null stores NULL.
	Text Kind = iota
	// RequiredText is a NOT NULL string. Null and empty values are skipped.
	RequiredText
	// Date is a YYYY-MM-DD string. Null and "" store NULL.
	Date
	// Time is an HH:MM[:SS] string. Null and "" store NULL.
	Time
	// Number is a nullable float.
	Number
	// Integer is a nullable whole number.
	Integer
	// Object is a JSON object column. Null stores {}.
	Object
	// Array is a JSON array column of arbitrary elements. Null stores [].
	Array
	// StringArray is a JSON array column of strings. Null stores [].
	StringArray
)

// Field maps one wire field to one storage column.
type Field struct {
	Wire   string
	Column string
	Kind   Kind
}

// Table is the allow-list of one entity.
type Table struct {
	fields []Field
	byWire map[string]Field
}

// NewTable panics on duplicate wire names.
func NewTable(fields ...Field) *Table {
	t := &Table{fields: fields, byWire: make(map[string]Field, len(fields))}
	for _, f := range fields {
		if _, dup := t.byWire[f.Wire]; dup {
			panic("mapper: duplicate wire field " + f.Wire)
		}
		t.byWire[f.Wire] = f
	}
	return t
}

// Fields returns the allow-list in declaration order.
func (t *Table) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// Column translates a wire field to its storage column. Only allow-listed fields
// and the createdAt/updatedAt timestamps are known.
func (t *Table) Column(wire string) (string, bool) {
	switch wire {
	case "createdAt":
		return "created_at", true
	case "updatedAt":
		return "updated_at", true
	}
	f, ok := t.byWire[wire]
	if !ok {
		return "", false
	}
	return f.Column, true
}

// Sort resolves sortBy/sortOrder query values. Unknown fields sort by created_at.
func (t *Table) Sort(sortBy, sortOrder string) domain.Sort {
	column, _ := t.Column(strings.TrimSpace(sortBy))
	return domain.Sort{Column: column, Order: domain.ParseSortOrder(sortOrder)}
}

// Apply converts the allow-listed fields present in body into column values.
// Unknown fields are ignored. Values of the wrong JSON type are collected into one validation error.
func (t *Table) Apply(body map[string]json.RawMessage) (domain.Columns, error) {
	columns := domain.Columns{}
	var problems []string
	for _, f := range t.fields {
		raw, present := body[f.Wire]
		if !present {
			continue
		}
		value, skip, err := convert(f, raw)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if !skip {
			columns[f.Column] = value
		}
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}
	return columns, nil
}

// WithDefaults fills columns that are absent or NULL.
func WithDefaults(columns domain.Columns, defaults domain.Columns) domain.Columns {
	for column, value := range defaults {
		if current, ok := columns[column]; !ok || current == nil {
			columns[column] = value
		}
	}
	return columns
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func convert(f Field, raw json.RawMessage) (value interface{}, skip bool, err error) {
	null := isNull(raw)
	switch f.Kind {
	case Text, Date, Time, RequiredText:
		if null {
			if f.Kind == RequiredText {
				return nil, true, nil
			}
			return nil, false, nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, false, fmt.Errorf("%s must be a string", f.Wire)
		}
		if s == "" {
			switch f.Kind {
			case RequiredText:
				return nil, true, nil
			case Date, Time:
				return nil, false, nil
			}
		}
		return s, false, nil

	case Number, Integer:
		if null {
			return nil, false, nil
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, false, fmt.Errorf("%s must be a number", f.Wire)
		}
		if f.Kind == Integer {
			if n != math.Trunc(n) {
				return nil, false, fmt.Errorf("%s must be an integer", f.Wire)
			}
			return int64(n), false, nil
		}
		return n, false, nil

	case Object:
		if null {
			return "{}", false, nil
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, false, fmt.Errorf("%s must be an object", f.Wire)
		}
		return compact(raw), false, nil

	case Array, StringArray:
		if null {
			return "[]", false, nil
		}
		if f.Kind == StringArray {
			var list []string
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, false, fmt.Errorf("%s must be an array of strings", f.Wire)
			}
		} else {
			var list []json.RawMessage
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, false, fmt.Errorf("%s must be an array", f.Wire)
			}
		}
		return compact(raw), false, nil
	}
	return nil, false, fmt.Errorf("%s has an unsupported kind", f.Wire)
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

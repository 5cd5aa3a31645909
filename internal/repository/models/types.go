package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// columnBytes normalises a JSON column value coming from the driver.
// ok is false when the column is NULL, empty or holds the literal "null".
func columnBytes(value interface{}) (b []byte, ok bool, err error) {
	if value == nil {
		return nil, false, nil
	}
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, false, errors.New("unsupported JSON column type " + fmt.Sprintf("%T", value))
	}
	if len(b) == 0 || string(b) == "null" {
		return nil, false, nil
	}
	return b, true, nil
}

// StringSlice is a JSONB array of strings. NULL reads as an empty slice.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	b, ok, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("StringSlice Scan: %w", err)
	}
	if !ok {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(b, s)
}

// JSONObject is a JSONB object. NULL reads as an empty object.
type JSONObject map[string]interface{}

func (o JSONObject) Value() (driver.Value, error) {
	if o == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (o *JSONObject) Scan(value interface{}) error {
	b, ok, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("JSONObject Scan: %w", err)
	}
	if !ok {
		*o = JSONObject{}
		return nil
	}
	return json.Unmarshal(b, o)
}

// Number returns the numeric value stored under key, if any.
func (o JSONObject) Number(key string) (float64, bool) {
	switch v := o[key].(type) {
	case float64:
		return v, v != 0
	case int:
		return float64(v), v != 0
	case json.Number:
		f, err := v.Float64()
		return f, err == nil && f != 0
	}
	return 0, false
}

// JSONList is a JSONB array of arbitrary values (options, sub questions).
// NULL reads as an empty list.
type JSONList []json.RawMessage

func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (l *JSONList) Scan(value interface{}) error {
	b, ok, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("JSONList Scan: %w", err)
	}
	if !ok {
		*l = JSONList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// ContactInfo is the organization contact_info column.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

func (c ContactInfo) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (c *ContactInfo) Scan(value interface{}) error {
	b, ok, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("ContactInfo Scan: %w", err)
	}
	if !ok {
		*c = ContactInfo{}
		return nil
	}
	return json.Unmarshal(b, c)
}

const dateLayout = "2006-01-02"

// NullDate is a nullable DATE column kept as its YYYY-MM-DD text.
type NullDate struct {
	String string
	Valid  bool
}

// NewNullDate treats an empty string as NULL.
func NewNullDate(s string) NullDate {
	if s == "" {
		return NullDate{}
	}
	return NullDate{String: s, Valid: true}
}

// Ptr returns nil for NULL.
func (d NullDate) Ptr() *string {
	if !d.Valid {
		return nil
	}
	s := d.String
	return &s
}

func (d NullDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.String, nil
}

func (d *NullDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = NullDate{}
	case time.Time:
		*d = NullDate{String: v.Format(dateLayout), Valid: true}
	case []byte:
		*d = NewNullDate(trimDate(string(v)))
	case string:
		*d = NewNullDate(trimDate(v))
	default:
		return errors.New("NullDate Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	return nil
}

// trimDate drops a time part some drivers append to DATE values.
func trimDate(s string) string {
	if len(s) > len(dateLayout) {
		if _, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			return s[:len(dateLayout)]
		}
	}
	return s
}

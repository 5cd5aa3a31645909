package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    StringSlice
		wantErr bool
	}{
		{name: "nil", input: nil, want: StringSlice{}},
		{name: "json null", input: []byte("null"), want: StringSlice{}},
		{name: "empty array", input: []byte("[]"), want: StringSlice{}},
		{name: "bytes", input: []byte(`["函数","导数"]`), want: StringSlice{"函数", "导数"}},
		{name: "string", input: `["a"]`, want: StringSlice{"a"}},
		{name: "unsupported", input: 42, wantErr: true},
		{name: "not an array", input: []byte(`{"a":1}`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestStringSlice_Value(t *testing.T) {
	v, err := StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringSlice{"x", "y"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["x","y"]`, v)
}

func TestJSONObject(t *testing.T) {
	var o JSONObject
	require.NoError(t, o.Scan(nil))
	assert.Equal(t, JSONObject{}, o)

	require.NoError(t, o.Scan([]byte(`{"语文":150,"数学":0}`)))
	n, ok := o.Number("语文")
	assert.True(t, ok)
	assert.Equal(t, 150.0, n)

	_, ok = o.Number("数学")
	assert.False(t, ok, "zero is treated as absent")
	_, ok = o.Number("英语")
	assert.False(t, ok)

	v, err := JSONObject(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestJSONList(t *testing.T) {
	var l JSONList
	require.NoError(t, l.Scan(nil))
	assert.Equal(t, JSONList{}, l)

	require.NoError(t, l.Scan([]byte(`[{"label":"A"},{"label":"B"}]`)))
	assert.Len(t, l, 2)

	v, err := l.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"label":"A"},{"label":"B"}]`, v.(string))
}

func TestContactInfo(t *testing.T) {
	var c ContactInfo
	require.NoError(t, c.Scan([]byte(`{"email":"x@y.cn","phone":"123"}`)))
	assert.Equal(t, ContactInfo{Email: "x@y.cn", Phone: "123"}, c)

	require.NoError(t, c.Scan(nil))
	assert.Equal(t, ContactInfo{}, c)

	v, err := ContactInfo{Website: "https://a.cn"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"website":"https://a.cn"}`, v)
}

func TestNullDate(t *testing.T) {
	var d NullDate
	require.NoError(t, d.Scan(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NullDate{String: "2024-03-01", Valid: true}, d)

	require.NoError(t, d.Scan("2024-03-02T00:00:00Z"))
	assert.Equal(t, "2024-03-02", d.String)

	require.NoError(t, d.Scan(nil))
	assert.False(t, d.Valid)

	v, err := NewNullDate("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, d.Scan(3.14))
}

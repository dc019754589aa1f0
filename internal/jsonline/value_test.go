package jsonline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "scenario", in: `{"x":1}`, want: "{\n  \"x\": 1\n}"},
		{name: "empty_object", in: `{}`, want: "{}"},
		{name: "empty_array", in: `[]`, want: "[]"},
		{
			name: "key_order_kept",
			in:   `{"zeta":1,"alpha":2,"mid":3}`,
			want: "{\n  \"zeta\": 1,\n  \"alpha\": 2,\n  \"mid\": 3\n}",
		},
		{
			name: "nested",
			in:   `{"a":[1,{"b":null}],"c":{}}`,
			want: "{\n  \"a\": [\n    1,\n    {\n      \"b\": null\n    }\n  ],\n  \"c\": {}\n}",
		},
		{name: "non_ascii", in: `{"name":"café ☕"}`, want: "{\n  \"name\": \"café ☕\"\n}"},
		{name: "html_chars", in: `["<a&b>"]`, want: "[\n  \"<a&b>\"\n]"},
		{name: "escapes_kept_valid", in: `["line\nbreak \"q\""]`, want: "[\n  \"line\\nbreak \\\"q\\\"\"\n]"},
		{name: "number_literal", in: `[1.50, -0, 2e10]`, want: "[\n  1.50,\n  -0,\n  2e10\n]"},
		{name: "booleans", in: `[true,false]`, want: "[\n  true,\n  false\n]"},
		{name: "duplicate_keys", in: `{"a":1,"b":2,"a":3}`, want: "{\n  \"a\": 3,\n  \"b\": 2\n}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := Parse(tc.in)
			require.NoError(t, err)
			got, ok := PrettyPrint(value)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrettyPrint_RoundTrip(t *testing.T) {
	lines := []string{
		`{"x":1}`,
		`prefix [1,"two",{"three":[3.0,null,true]}] suffix`,
		`{"ü":"naïve","list":[[],{}],"deep":{"a":{"b":{"c":"d"}}}}`,
		`{"esc":"tab\there \u0001 \\ /"}`,
	}
	for _, line := range lines {
		c := Classify(line)
		require.Equal(t, ValidJSON, c.Kind, line)

		pretty, ok := PrettyPrint(c.Value)
		require.True(t, ok)

		back, err := Parse(pretty)
		require.NoError(t, err, "pretty output must parse: %s", pretty)
		assert.True(t, Equal(c.Value, back), "round trip changed value for %q", line)
	}
}

func TestPrettyPrint_PlainGoValues(t *testing.T) {
	got, ok := PrettyPrint(map[string]any{"n": 2})
	require.True(t, ok)
	assert.Equal(t, "{\n  \"n\": 2\n}", got)

	_, ok = PrettyPrint(make(chan int))
	assert.False(t, ok)
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{
		`{"a": }`,
		`[1,]`,
		`{"a":1}}`,
		`{} {}`,
		`{1:2}`,
		`[`,
		`{'a':1}`,
	} {
		_, err := Parse(in)
		assert.Error(t, err, "Parse(%q)", in)
	}
}

func TestEqual(t *testing.T) {
	a, err := Parse(`{"a":[1,"x"],"b":null}`)
	require.NoError(t, err)
	b, err := Parse(`{ "a" : [ 1 , "x" ] , "b" : null }`)
	require.NoError(t, err)
	reordered, err := Parse(`{"b":null,"a":[1,"x"]}`)
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, reordered))
	assert.False(t, Equal(a, nil))
	assert.False(t, Equal([]any{"1"}, []any{}))
}

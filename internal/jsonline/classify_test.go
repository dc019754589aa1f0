package jsonline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		kind   Kind
		raw    string
		prefix string
		suffix string
	}{
		{name: "empty", line: "", kind: PlainText},
		{name: "whitespace", line: " \t  ", kind: PlainText},
		{name: "prose", line: "hello world", kind: PlainText},
		{name: "whole_object", line: `{"x":1}`, kind: ValidJSON, raw: `{"x":1}`},
		{name: "whole_array", line: `[1, 2, 3]`, kind: ValidJSON, raw: `[1, 2, 3]`},
		{
			name:   "prefixed",
			line:   `2024-01-01 INFO: {"a":1}`,
			kind:   ValidJSON,
			raw:    `{"a":1}`,
			prefix: "2024-01-01 INFO: ",
		},
		{
			name:   "prefix_and_suffix",
			line:   `req {"id": 7} done`,
			kind:   ValidJSON,
			raw:    `{"id": 7}`,
			prefix: "req ",
			suffix: " done",
		},
		{name: "malformed_with_quote", line: `INFO: {"a": }`, kind: InvalidJSONLike, raw: `{"a": }`},
		{name: "single_quotes", line: `{'a': 1}`, kind: InvalidJSONLike, raw: `{'a': 1}`},
		{name: "malformed_without_quote", line: `counts {a: 1}`, kind: PlainText},
		{name: "closing_before_opening", line: `] then [`, kind: PlainText},
		{name: "only_opening", line: `value { unterminated`, kind: PlainText},
		{name: "mismatched_brackets", line: `{]`, kind: PlainText},
		{name: "bracketed_level", line: `[INFO] started`, kind: PlainText},
		{
			name: "two_objects_greedy",
			line: `{"a":1} and {"b":2}`,
			kind: InvalidJSONLike,
			raw:  `{"a":1} and {"b":2}`,
		},
		{name: "trailing_bracket_token", line: `[1] [2]`, kind: PlainText},
		{name: "empty_object", line: `payload={}`, kind: ValidJSON, raw: `{}`, prefix: "payload="},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.line)
			require.Equal(t, tc.kind, got.Kind, "kind for %q", tc.line)
			assert.Equal(t, tc.raw, got.Raw)
			assert.Equal(t, tc.prefix, got.Prefix)
			assert.Equal(t, tc.suffix, got.Suffix)
			if tc.kind == ValidJSON {
				assert.Equal(t, tc.line, got.Prefix+got.Raw+got.Suffix)
			} else {
				assert.Nil(t, got.Value)
			}
		})
	}
}

func TestClassify_IsPure(t *testing.T) {
	lines := []string{
		"",
		"hello world",
		`INFO: {"a": }`,
		`ts=1 {"nested":{"k":[1,2,{"z":null}]},"ok":true}`,
	}
	for _, line := range lines {
		first := Classify(line)
		second := Classify(line)
		assert.Equal(t, first.Kind, second.Kind)
		assert.Equal(t, first.Raw, second.Raw)
		assert.Equal(t, first.Prefix, second.Prefix)
		assert.Equal(t, first.Suffix, second.Suffix)
		assert.True(t, Equal(first.Value, second.Value), "values differ for %q", line)
	}
}

func TestClassify_ValueTypes(t *testing.T) {
	got := Classify(`{"s":"x","n":1.50,"b":false,"z":null,"a":[]}`)
	require.Equal(t, ValidJSON, got.Kind)

	obj, ok := got.Value.(*Object)
	require.True(t, ok, "value is %T", got.Value)

	s, _ := obj.Get("s")
	assert.Equal(t, "x", s)
	n, _ := obj.Get("n")
	assert.Equal(t, json.Number("1.50"), n)
	b, _ := obj.Get("b")
	assert.Equal(t, false, b)
	z, present := obj.Get("z")
	assert.True(t, present)
	assert.Nil(t, z)
	a, _ := obj.Get("a")
	assert.Equal(t, []any{}, a)
}

func TestClassifiedPretty(t *testing.T) {
	pretty, ok := Classify(`{"x":1}`).Pretty()
	require.True(t, ok)
	assert.Equal(t, "{\n  \"x\": 1\n}", pretty)

	_, ok = Classify("hello").Pretty()
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", PlainText.String())
	assert.Equal(t, "json", ValidJSON.String())
	assert.Equal(t, "invalid-json", InvalidJSONLike.String())
}

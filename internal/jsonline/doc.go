// Package jsonline classifies single log lines by the JSON they carry.
//
// # Overview
//
// Log lines frequently wrap a JSON payload in plain text, for example a
// timestamp and level before the object:
//
//	2024-01-01 INFO: {"a":1}
//
// Classify isolates the JSON-looking region of a line and decides which of
// three kinds the line belongs to:
//
//   - ValidJSON: the region parses; the parsed value, the region itself and
//     the text around it are returned
//   - InvalidJSONLike: the region fails to parse but contains a quote
//     character, so it looks like broken JSON rather than prose
//   - PlainText: everything else, including empty and whitespace-only lines
//
// # Region Detection
//
// The region runs from the first '{' or '[' to the last '}' or ']' on the
// line. It is a greedy span, not a bracket-balanced scan, so a line holding
// two independent objects yields one span covering both (which then fails to
// parse).
//
// # Values
//
// Parsed values use these Go types:
//
//   - objects: *Object, an insertion-ordered map (duplicate keys keep the
//     first position and the last value)
//   - arrays: []any
//   - strings: string
//   - numbers: json.Number, keeping the literal text
//   - booleans: bool
//   - null: nil
//
// PrettyPrint re-serializes a value with two-space indentation, keeping key
// order and leaving non-ASCII and HTML characters unescaped.
//
// # Error Handling
//
// Classification never fails. Malformed candidates degrade the line to
// InvalidJSONLike or PlainText. PrettyPrint reports failure with a false
// second return value, which callers treat as "no expansion available".
package jsonline

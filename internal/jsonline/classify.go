package jsonline

import "strings"

// Kind tags a classified line.
type Kind int

const (
	PlainText Kind = iota
	ValidJSON
	InvalidJSONLike
)

func (k Kind) String() string {
	switch k {
	case ValidJSON:
		return "json"
	case InvalidJSONLike:
		return "invalid-json"
	default:
		return "text"
	}
}

// Classified is the result of Classify. Value, Prefix and Suffix are set only
// for ValidJSON; Raw is set for ValidJSON and InvalidJSONLike.
type Classified struct {
	Kind   Kind
	Value  any
	Raw    string
	Prefix string
	Suffix string
}

// Pretty returns the indented form of a ValidJSON line.
func (c Classified) Pretty() (string, bool) {
	if c.Kind != ValidJSON {
		return "", false
	}
	return PrettyPrint(c.Value)
}

// Classify decides whether line carries valid JSON, broken JSON or neither.
func Classify(line string) Classified {
	if strings.TrimSpace(line) == "" {
		return Classified{Kind: PlainText}
	}

	start, end, ok := span(line)
	if !ok {
		return Classified{Kind: PlainText}
	}
	raw := line[start:end]

	value, err := Parse(raw)
	if err == nil {
		return Classified{
			Kind:   ValidJSON,
			Value:  value,
			Raw:    raw,
			Prefix: line[:start],
			Suffix: line[end:],
		}
	}
	if strings.ContainsAny(raw, `"'`) {
		return Classified{Kind: InvalidJSONLike, Raw: raw}
	}
	return Classified{Kind: PlainText}
}

// span returns the byte range [start, end) from the first opening bracket to
// the last closing bracket.
func span(line string) (start, end int, ok bool) {
	start = strings.IndexAny(line, "{[")
	if start < 0 {
		return 0, 0, false
	}
	last := strings.LastIndexAny(line, "}]")
	if last <= start {
		return 0, 0, false
	}
	return start, last + 1, true
}

package attr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// ValueKind identifies the declared value type of an attribute handler.
// Raw document strings are converted exactly once, at the batch boundary,
// so handler bodies always receive an already-typed Value.
type ValueKind int

const (
	// KindString passes the raw string through.
	KindString ValueKind = iota
	// KindInt is a base-10 integer.
	KindInt
	// KindFloat is a decimal number.
	KindFloat
	// KindBool accepts the strconv.ParseBool forms.
	KindBool
	// KindColor is "#RGB", "#RRGGBB", "#AARRGGBB", or an SVG 1.1 color name.
	KindColor
	// KindDimension is a number with an optional dp/px/sp suffix, or the
	// match_parent / wrap_content keywords.
	KindDimension
	// KindReference names another view: "parent", "@id/name", "@+id/name",
	// or a bare name.
	KindReference
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindDimension:
		return "dimension"
	case KindReference:
		return "reference"
	default:
		return "invalid"
	}
}

// Value is the closed union handed to attribute handlers.
type Value struct {
	kind ValueKind
	raw  string
	i    int64
	f    float64
	b    bool
	c    color.NRGBA
}

// Kind returns the kind the value was parsed as.
func (v Value) Kind() ValueKind { return v.kind }

// Raw returns the original document string.
func (v Value) Raw() string { return v.raw }

// Str returns the string payload. Valid for KindString.
func (v Value) Str() string { return v.raw }

// Int returns the integer payload. Valid for KindInt.
func (v Value) Int() int64 { return v.i }

// Float returns the numeric payload. Valid for KindFloat.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload. Valid for KindBool.
func (v Value) Bool() bool { return v.b }

// Color returns the color payload. Valid for KindColor.
func (v Value) Color() color.NRGBA { return v.c }

// Dim returns the dimension payload in density-independent units, or one
// of the view.MatchParent / view.WrapContent sentinels. Valid for
// KindDimension.
func (v Value) Dim() view.Size { return view.Size(v.f) }

// Ref returns the referenced view name with any "@id/" or "@+id/" prefix
// stripped. Valid for KindReference. The parent reference stays "parent".
func (v Value) Ref() string { return v.raw }

// IsParentRef reports whether a reference names the enclosing layout.
func (v Value) IsParentRef() bool { return v.kind == KindReference && v.raw == "parent" }

// Parse converts a raw document string into a typed Value, failing with a
// wrapped ErrTypeMismatch when the text does not satisfy the kind. This is
// the single validation point for attribute values.
func Parse(raw string, kind ValueKind) (Value, error) {
	switch kind {
	case KindString:
		return Value{kind: kind, raw: raw}, nil

	case KindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Value{}, mismatch(raw, kind)
		}
		return Value{kind: kind, raw: raw, i: i}, nil

	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, mismatch(raw, kind)
		}
		return Value{kind: kind, raw: raw, f: f}, nil

	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, mismatch(raw, kind)
		}
		return Value{kind: kind, raw: raw, b: b}, nil

	case KindColor:
		c, ok := parseColor(strings.TrimSpace(raw))
		if !ok {
			return Value{}, mismatch(raw, kind)
		}
		return Value{kind: kind, raw: raw, c: c}, nil

	case KindDimension:
		f, ok := parseDimension(strings.TrimSpace(raw))
		if !ok {
			return Value{}, mismatch(raw, kind)
		}
		return Value{kind: kind, raw: raw, f: f}, nil

	case KindReference:
		ref := normalizeRef(strings.TrimSpace(raw))
		if ref == "" {
			return Value{}, mismatch(raw, kind)
		}
		return Value{kind: kind, raw: ref}, nil

	default:
		return Value{}, mismatch(raw, kind)
	}
}

func mismatch(raw string, kind ValueKind) error {
	return fmt.Errorf("%w: %q is not a valid %s", errors.ErrTypeMismatch, raw, kind)
}

// parseColor accepts #RGB, #RRGGBB, #AARRGGBB, and named colors.
func parseColor(s string) (color.NRGBA, bool) {
	if s == "" {
		return color.NRGBA{}, false
	}
	if s[0] != '#' {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}

	hex := s[1:]
	parse := func(sub string) (uint8, bool) {
		n, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(n), true
	}

	switch len(hex) {
	case 3: // #RGB, each nibble doubled
		var out [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := parse(hex[i : i+1])
			if !ok {
				return color.NRGBA{}, false
			}
			out[i] = n<<4 | n
		}
		return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xFF}, true
	case 6: // #RRGGBB
		r, ok1 := parse(hex[0:2])
		g, ok2 := parse(hex[2:4])
		b, ok3 := parse(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, true
	case 8: // #AARRGGBB
		a, ok1 := parse(hex[0:2])
		r, ok2 := parse(hex[2:4])
		g, ok3 := parse(hex[4:6])
		b, ok4 := parse(hex[6:8])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: r, G: g, B: b, A: a}, true
	default:
		return color.NRGBA{}, false
	}
}

// parseDimension accepts the size keywords and numbers with an optional
// dp/px/sp suffix. All units collapse to density-independent values here;
// scaling to device pixels is the consuming layout's business.
func parseDimension(s string) (float64, bool) {
	switch s {
	case "match_parent", "fill_parent":
		return float64(view.MatchParent), true
	case "wrap_content":
		return float64(view.WrapContent), true
	}
	for _, suffix := range []string{"dp", "dip", "px", "sp"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < float64(view.WrapContent) {
		return 0, false
	}
	return f, true
}

// normalizeRef strips the id-reference prefixes used by declarative
// documents, leaving a bare view name or "parent".
func normalizeRef(s string) string {
	s = strings.TrimPrefix(s, "@+id/")
	s = strings.TrimPrefix(s, "@id/")
	return s
}

package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paramdex/paramdex/internal/domain"
)

// codec converts between edit text and the normalized value of an EditKind.
// Integer kinds use int64, float kinds float64, EditBool bool and
// EditString string.
type codec struct {
	parse  func(text string) (any, error)
	format func(v any) string
}

var codecs = [...]codec{
	EditNone:      {parse: notEditable, format: formatAny},
	EditBool:      {parse: parseBool, format: formatAny},
	EditInt8:      intCodec(math.MinInt8, math.MaxInt8, 0),
	EditUint8:     intCodec(0, math.MaxUint8, 0),
	EditInt16:     intCodec(math.MinInt16, math.MaxInt16, 0),
	EditUint16:    intCodec(0, math.MaxUint16, 0),
	EditInt32:     intCodec(math.MinInt32, math.MaxInt32, 0),
	EditUint32:    intCodec(0, math.MaxUint32, 0),
	EditFloat32:   floatCodec(32),
	EditFloat64:   floatCodec(64),
	EditHexUint8:  intCodec(0, math.MaxUint8, 2),
	EditHexUint16: intCodec(0, math.MaxUint16, 4),
	EditHexUint32: intCodec(0, math.MaxUint32, 8),
	EditString:    {parse: func(text string) (any, error) { return text, nil }, format: formatAny},
	EditEnum:      {parse: notEditable, format: formatAny},
}

func (k EditKind) codec() codec {
	if k < 0 || int(k) >= len(codecs) {
		return codecs[EditNone]
	}
	return codecs[k]
}

// IsHex reports whether the kind is edited as hexadecimal
func (k EditKind) IsHex() bool {
	return k == EditHexUint8 || k == EditHexUint16 || k == EditHexUint32
}

// ParseEditText converts user input into the value SetCellEditValue expects.
// Hex kinds read the text as base 16 with an optional 0x prefix; decimal
// integer kinds accept a 0x prefix too.
func ParseEditText(kind EditKind, text string) (any, error) {
	return kind.codec().parse(text)
}

// FormatEditValue renders a value as edit text for kind
func FormatEditValue(kind EditKind, v any) string {
	return kind.codec().format(v)
}

func notEditable(string) (any, error) {
	return nil, ErrNotEditable
}

func parseBool(text string) (any, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%q is not true or false", text)
	}
	return b, nil
}

func intCodec(min, max int64, hexDigits int) codec {
	return codec{
		parse: func(text string) (any, error) {
			n, err := domain.ParseInteger(text, hexDigits > 0)
			if err != nil {
				return nil, err
			}
			if n < min || n > max {
				return nil, fmt.Errorf("%d is outside %d..%d", n, min, max)
			}
			return n, nil
		},
		format: func(v any) string {
			n, ok := toInt64(v)
			if !ok {
				return formatAny(v)
			}
			if hexDigits > 0 {
				return fmt.Sprintf("0x%0*X", hexDigits, n)
			}
			return strconv.FormatInt(n, 10)
		},
	}
}

func floatCodec(bits int) codec {
	return codec{
		parse: func(text string) (any, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(text), bits)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%q is not a finite number", text)
			}
			return f, nil
		},
		format: func(v any) string {
			f, ok := v.(float64)
			if !ok {
				return formatAny(v)
			}
			return strconv.FormatFloat(f, 'g', -1, bits)
		},
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}

func formatAny(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

package domain

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a cell value tagged with its kind. Only the field matching the
// kind's class is meaningful.
type Value struct {
	kind CellKind
	num  int64
	flt  float64
	str  string
	raw  []byte
}

// ZeroValue returns the zero value for a kind
func ZeroValue(kind CellKind) Value {
	return Value{kind: kind}
}

// IntValue builds an integer (or boolean flag) value, checking the kind's range
func IntValue(kind CellKind, n int64) (Value, error) {
	info := kind.info()
	switch info.class {
	case classInt, classBool:
	case classFloat:
		return FloatValue(kind, float64(n))
	default:
		return Value{}, fmt.Errorf("%w: %s does not hold integers", ErrInvalidValue, kind)
	}
	if n < info.min || n > info.max {
		return Value{}, fmt.Errorf("%w: %d not in [%d, %d] for %s", ErrValueOutOfRange, n, info.min, info.max, kind)
	}
	return Value{kind: kind, num: n}, nil
}

// FloatValue builds a float or fixed-point value. f32 values are rounded to
// single precision and fixed values to 1/65536.
func FloatValue(kind CellKind, f float64) (Value, error) {
	info := kind.info()
	if info.class != classFloat {
		return Value{}, fmt.Errorf("%w: %s does not hold floats", ErrInvalidValue, kind)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, f)
	}
	switch kind {
	case KindF32:
		if math.Abs(f) > math.MaxFloat32 {
			return Value{}, fmt.Errorf("%w: %v overflows f32", ErrValueOutOfRange, f)
		}
		f = float64(float32(f))
	case KindFixed:
		scaled := math.Round(f * fixedScale)
		if scaled < float64(info.min) || scaled > float64(info.max) {
			return Value{}, fmt.Errorf("%w: %v overflows fixed", ErrValueOutOfRange, f)
		}
		f = scaled / fixedScale
	}
	return Value{kind: kind, flt: f}, nil
}

// BoolValue builds a boolean flag value
func BoolValue(kind CellKind, b bool) Value {
	v := Value{kind: kind}
	if b {
		v.num = 1
	}
	return v
}

// StringValue builds a fixed-length string value
func StringValue(kind CellKind, s string) Value {
	return Value{kind: kind, str: s}
}

// RawValue builds a padding value, copying b
func RawValue(kind CellKind, b []byte) Value {
	return Value{kind: kind, raw: append([]byte(nil), b...)}
}

func (v Value) Kind() CellKind { return v.kind }

// Int returns the integer payload (0/1 for flags)
func (v Value) Int() int64 { return v.num }

func (v Value) Float() float64 { return v.flt }

func (v Value) Bool() bool { return v.num != 0 }

// Text returns the string payload of a fixstr value
func (v Value) Text() string { return v.str }

// Bytes returns a copy of the raw payload
func (v Value) Bytes() []byte { return append([]byte(nil), v.raw...) }

// Int64 converts the value to a signed 64-bit integer for use as a row ID.
// Floats truncate toward zero. ok is false for non-indexable kinds.
func (v Value) Int64() (int64, bool) {
	info := v.kind.info()
	if !info.indexable {
		return 0, false
	}
	switch info.class {
	case classInt, classBool:
		return v.num, true
	case classFloat:
		return int64(v.flt), true
	}
	return 0, false
}

// Equal reports whether both values have the same kind and payload
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind.info().class {
	case classInt, classBool:
		return v.num == o.num
	case classFloat:
		return v.flt == o.flt
	case classString:
		return v.str == o.str
	default:
		return bytes.Equal(v.raw, o.raw)
	}
}

// Clone returns a copy that shares no memory with v
func (v Value) Clone() Value {
	if v.raw != nil {
		v.raw = append([]byte(nil), v.raw...)
	}
	return v
}

// String formats the value for display. Hex kinds render as zero-padded
// upper-case hex without prefix.
func (v Value) String() string {
	info := v.kind.info()
	switch info.class {
	case classInt:
		if info.hexDigits > 0 {
			return fmt.Sprintf("%0*X", info.hexDigits, v.num)
		}
		return strconv.FormatInt(v.num, 10)
	case classBool:
		return strconv.FormatBool(v.num != 0)
	case classFloat:
		return formatFloat(v.kind, v.flt)
	case classString:
		return v.str
	default:
		return strings.ToUpper(hex.EncodeToString(v.raw))
	}
}

// Encode returns the canonical storage text of the value. Decode reverses it.
func (v Value) Encode() string {
	info := v.kind.info()
	switch info.class {
	case classInt, classBool:
		return strconv.FormatInt(v.num, 10)
	case classFloat:
		return formatFloat(v.kind, v.flt)
	case classString:
		return v.str
	default:
		return hex.EncodeToString(v.raw)
	}
}

// Decode parses canonical storage text produced by Encode
func Decode(kind CellKind, text string) (Value, error) {
	info := kind.info()
	switch info.class {
	case classInt, classBool:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, text)
		}
		return IntValue(kind, n)
	case classFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, text)
		}
		return FloatValue(kind, f)
	case classString:
		return StringValue(kind, text), nil
	default:
		b, err := hex.DecodeString(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not hex", ErrInvalidValue, text)
		}
		return RawValue(kind, b), nil
	}
}

// ParseValue parses user input for a kind. Input is trimmed first except for
// string kinds, which keep it verbatim. Integer kinds accept a 0x prefix for
// base 16; hex kinds are always read as base 16.
func ParseValue(kind CellKind, text string) (Value, error) {
	info := kind.info()
	if info.class != classString {
		text = strings.TrimSpace(text)
	}
	switch info.class {
	case classInt:
		n, err := ParseInteger(text, info.hexDigits > 0)
		if err != nil {
			return Value{}, err
		}
		return IntValue(kind, n)
	case classBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, text)
		}
		return BoolValue(kind, b), nil
	case classFloat:
		bits := 64
		if kind == KindF32 {
			bits = 32
		}
		f, err := strconv.ParseFloat(text, bits)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return Value{}, fmt.Errorf("%w: %q", ErrValueOutOfRange, text)
			}
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, text)
		}
		return FloatValue(kind, f)
	case classString:
		return StringValue(kind, text), nil
	default:
		b, err := hex.DecodeString(strings.ReplaceAll(text, " ", ""))
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not hex", ErrInvalidValue, text)
		}
		return RawValue(kind, b), nil
	}
}

// ParseInteger reads a decimal integer, or base 16 with a 0x prefix or when
// hexOnly is set. Surrounding space is ignored.
func ParseInteger(text string, hexOnly bool) (int64, error) {
	text = strings.TrimSpace(text)
	neg := false
	digits := text
	if strings.HasPrefix(digits, "-") {
		neg = true
		digits = digits[1:]
	}
	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	} else if hexOnly {
		base = 16
	}
	if digits == "" {
		return 0, fmt.Errorf("%w: empty number", ErrInvalidValue)
	}
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, fmt.Errorf("%w: %q", ErrValueOutOfRange, text)
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, text)
	}
	if neg {
		n = -n
	}
	return n, nil
}

func formatFloat(kind CellKind, f float64) string {
	if kind == KindF32 {
		return strconv.FormatFloat(f, 'g', -1, 32)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

package domain

import (
	"fmt"
	"math"
)

// CellKind is the storage type of a cell as declared by its layout
type CellKind int

const (
	KindS8 CellKind = iota
	KindU8
	KindS16
	KindU16
	KindS32
	KindU32
	KindF32
	KindFixed // 16.16 fixed point
	KindB8
	KindB16
	KindB32
	KindX8
	KindX16
	KindX32
	KindFixStr
	KindDummy
)

// valueClass selects which field of a Value carries the payload
type valueClass int

const (
	classInt valueClass = iota
	classFloat
	classBool
	classString
	classRaw
)

// kindInfo is one row of the kind table. Every conversion goes through it.
type kindInfo struct {
	name      string
	class     valueClass
	min, max  int64
	hexDigits int
	indexable bool
}

const fixedScale = 65536

var kindTable = [...]kindInfo{
	KindS8:     {name: "s8", class: classInt, min: math.MinInt8, max: math.MaxInt8, indexable: true},
	KindU8:     {name: "u8", class: classInt, min: 0, max: math.MaxUint8, indexable: true},
	KindS16:    {name: "s16", class: classInt, min: math.MinInt16, max: math.MaxInt16, indexable: true},
	KindU16:    {name: "u16", class: classInt, min: 0, max: math.MaxUint16, indexable: true},
	KindS32:    {name: "s32", class: classInt, min: math.MinInt32, max: math.MaxInt32, indexable: true},
	KindU32:    {name: "u32", class: classInt, min: 0, max: math.MaxUint32, indexable: true},
	KindF32:    {name: "f32", class: classFloat, indexable: true},
	KindFixed:  {name: "fixed", class: classFloat, min: math.MinInt32, max: math.MaxInt32, indexable: true},
	KindB8:     {name: "b8", class: classBool, min: 0, max: 1, indexable: true},
	KindB16:    {name: "b16", class: classBool, min: 0, max: 1, indexable: true},
	KindB32:    {name: "b32", class: classBool, min: 0, max: 1, indexable: true},
	KindX8:     {name: "x8", class: classInt, min: 0, max: math.MaxUint8, hexDigits: 2, indexable: true},
	KindX16:    {name: "x16", class: classInt, min: 0, max: math.MaxUint16, hexDigits: 4, indexable: true},
	KindX32:    {name: "x32", class: classInt, min: 0, max: math.MaxUint32, hexDigits: 8, indexable: true},
	KindFixStr: {name: "fixstr", class: classString},
	KindDummy:  {name: "dummy", class: classRaw},
}

var kindsByName = func() map[string]CellKind {
	m := make(map[string]CellKind, len(kindTable))
	for k, info := range kindTable {
		m[info.name] = CellKind(k)
	}
	return m
}()

// ParseKind maps a layout type name ("s32", "fixstr", ...) to its CellKind
func ParseKind(name string) (CellKind, error) {
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown cell type %q", name)
}

func (k CellKind) info() kindInfo {
	if k < 0 || int(k) >= len(kindTable) {
		return kindInfo{name: "invalid", class: classRaw}
	}
	return kindTable[k]
}

func (k CellKind) String() string { return k.info().name }

// Indexable reports whether values of this kind can be read as a row ID
func (k CellKind) Indexable() bool { return k.info().indexable }

// IsInteger reports whether the kind holds a plain or hex integer
func (k CellKind) IsInteger() bool { return k.info().class == classInt }

func (k CellKind) IsFloat() bool { return k.info().class == classFloat }

func (k CellKind) IsBool() bool { return k.info().class == classBool }

func (k CellKind) IsString() bool { return k.info().class == classString }

// IsPadding reports whether the kind is raw padding that is never shown
func (k CellKind) IsPadding() bool { return k.info().class == classRaw }

// HexDigits returns the display width for hex kinds, 0 otherwise
func (k CellKind) HexDigits() int { return k.info().hexDigits }

// Range returns the inclusive integer range of the kind.
// ok is false for kinds without an integer range.
func (k CellKind) Range() (min, max int64, ok bool) {
	info := k.info()
	if info.class != classInt && info.class != classBool {
		return 0, 0, false
	}
	return info.min, info.max, true
}

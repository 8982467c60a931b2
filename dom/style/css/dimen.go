package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| ViewRel unit
	| FontRel unit
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// --- Parsing ---------------------------------------------------------------

// Length units as multiples of a point.
var absoluteUnits = map[string]float64{
	"px": 0.75,
	"pt": 1,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

var relativeUnits = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
}

// ParseDimen creates a CSS dimension from a property value, e.g. "12px",
// "50%", "1.5em" or "auto". An empty property results in an unset dimension.
// Relative units other than percentages keep their numeric value as a multiple
// of a point.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.TrimSpace(strings.ToLower(p.String()))
	switch s {
	case "":
		return DimenT{}, nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	}
	num, unit := splitNumber(s)
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("not a CSS dimension: %q", s)
	}
	if unit == "%" {
		return Percentage(FromInt(int(math.Round(x)))), nil
	}
	if unit == "" && x == 0 {
		return JustDimen(0), nil
	}
	if f, ok := absoluteUnits[unit]; ok {
		return JustDimen(dimen.DU(x * f * float64(dimen.PT))), nil
	}
	if flag, ok := relativeUnits[unit]; ok {
		return DimenT{d: dimen.DU(x * float64(dimen.PT)), flags: flag}, nil
	}
	return DimenT{}, fmt.Errorf("unknown unit in CSS dimension: %q", s)
}

// splitNumber splits a leading decimal number from its suffix.
func splitNumber(s string) (string, string) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	return s[:i], s[i:]
}

// IsUnset is true for a dimension created from an empty property.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// IsAuto is true for dimension `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsZero is true for fixed or relative dimensions with a value of 0.
func (d DimenT) IsZero() bool {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return d.d == 0
	case d.flags&relativeMask == dimenPercent:
		return d.percent == FromInt(0)
	case d.flags&relativeMask > 0:
		return d.d == 0
	}
	return false
}

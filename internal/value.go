package internal

import (
	"math"
	"strconv"
	"strings"
)

// value is a runtime value. The set of implementations is closed:
// basicNumber, basicString and basicBool.
type value interface {
	kind() valueKind
	String() string
}

type valueKind int

const (
	kindNumber valueKind = iota
	kindString
	kindBool
)

func (k valueKind) String() string {
	switch k {
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	}
	return "boolean"
}

type basicNumber float64

type basicString string

// basicBool is only produced by comparisons
type basicBool bool

func (n basicNumber) kind() valueKind { return kindNumber }
func (s basicString) kind() valueKind { return kindString }
func (b basicBool) kind() valueKind   { return kindBool }

// String renders numbers the way the language prints them: always with a
// fractional part, switching to scientific notation outside [1e-3, 1e7).
func (n basicNumber) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent := s, "0"
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa, exponent = s[:i], s[i+1:]
	}
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, _ := strconv.Atoi(exponent)
	return mantissa + "E" + strconv.Itoa(exp)
}

func (s basicString) String() string {
	return string(s)
}

func (b basicBool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// equalValues compares structurally; values of different kinds are never equal
func equalValues(left, right value) bool {
	switch l := left.(type) {
	case basicNumber:
		r, ok := right.(basicNumber)
		return ok && l == r
	case basicString:
		r, ok := right.(basicString)
		return ok && l == r
	case basicBool:
		r, ok := right.(basicBool)
		return ok && l == r
	}
	return false
}

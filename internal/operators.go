package internal

import "math"

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opMod operator = "mod"
	opEq  operator = "eq"
	opNeq operator = "neq"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

type operatorApply func(left, right value) (value, error)

var binaryOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkStar:         opMul,
	tkSlash:        opDiv,
	tkMod:          opMod,
	tkEqual:        opEq,
	tkNotEqual:     opNeq,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

var operations = map[operator]operatorApply{
	opAdd: add,
	opSub: numeric(func(x, y float64) (value, error) {
		return basicNumber(x - y), nil
	}),
	opMul: numeric(func(x, y float64) (value, error) {
		return basicNumber(x * y), nil
	}),
	opDiv: numeric(func(x, y float64) (value, error) {
		if y == 0 {
			return nil, errDivisionByZero
		}
		return basicNumber(x / y), nil
	}),
	opMod: numeric(func(x, y float64) (value, error) {
		if y == 0 {
			return nil, errModulusByZero
		}
		return basicNumber(math.Mod(x, y)), nil
	}),
	opLt: numeric(func(x, y float64) (value, error) {
		return basicBool(x < y), nil
	}),
	opLte: numeric(func(x, y float64) (value, error) {
		return basicBool(x <= y), nil
	}),
	opGt: numeric(func(x, y float64) (value, error) {
		return basicBool(x > y), nil
	}),
	opGte: numeric(func(x, y float64) (value, error) {
		return basicBool(x >= y), nil
	}),
	opEq: func(left, right value) (value, error) {
		return basicBool(equalValues(left, right)), nil
	},
	opNeq: func(left, right value) (value, error) {
		return basicBool(!equalValues(left, right)), nil
	},
}

// add sums two numbers, or concatenates when either side is a string
func add(left, right value) (value, error) {
	l, lok := left.(basicNumber)
	r, rok := right.(basicNumber)
	if lok && rok {
		return l + r, nil
	}
	_, lstr := left.(basicString)
	_, rstr := right.(basicString)
	if lstr || rstr {
		return basicString(left.String() + right.String()), nil
	}
	return nil, errOperandTypes
}

func numeric(op func(x, y float64) (value, error)) operatorApply {
	return func(left, right value) (value, error) {
		l, ok := left.(basicNumber)
		if !ok {
			return nil, errOperandTypes
		}
		r, ok := right.(basicNumber)
		if !ok {
			return nil, errOperandTypes
		}
		return op(float64(l), float64(r))
	}
}

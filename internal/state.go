package internal

import (
	"errors"
	"fmt"
)

type phase int

const (
	phaseLexical phase = iota
	phaseSyntax
	phaseRuntime
)

func (p phase) String() string {
	switch p {
	case phaseLexical:
		return "Lexical error"
	case phaseSyntax:
		return "Syntax error"
	}
	return "Runtime error"
}

// Error is a checked failure raised while scanning, parsing or running a program.
// Err holds the kind and is one of the err* sentinels below.
type Error struct {
	Phase  phase
	Err    error
	Line   int
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s on line %d: %s", e.Phase, e.Line, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Runtime reports whether the failure happened while executing the program
func (e *Error) Runtime() bool {
	return e.Phase == phaseRuntime
}

func syntaxErr(err error, tk *token, detail string) *Error {
	return &Error{Phase: phaseSyntax, Err: err, Line: tk.line, Detail: detail}
}

func runtimeErr(err error, tk *token, detail string) *Error {
	return &Error{Phase: phaseRuntime, Err: err, Line: tk.line, Detail: detail}
}

// interpreterState stores what a single run produced before execution
type interpreterState struct {
	source  string
	program *program
}

// Lexer errors
var errUnclosedString = errors.New("Missing closing quote for string")

// Parser errors
var errUnclosedParen = errors.New("Missing closing parenthesis")
var errUndefinedExpr = errors.New("Expected expression")
var errUndefinedStmt = errors.New("Unexpected token")
var errExpectedVariable = errors.New("Expected variable name")
var errExpectedEqual = errors.New("Expected '='")
var errExpectedThen = errors.New("Expected THEN after condition")
var errExpectedTo = errors.New("Expected TO in FOR")
var errExpectedLabel = errors.New("Expected label name")
var errMissingEndif = errors.New("Missing ENDIF for IF")
var errMissingNext = errors.New("Missing NEXT for FOR")
var errUnopenedBlock = errors.New("Block keyword without opening statement")
var errNextMismatch = errors.New("NEXT does not match FOR variable")
var errDuplicateLabel = errors.New("Label already declared")
var errUnresolvedLabel = errors.New("Label not declared")

// Runtime errors
var errUndefinedVar = errors.New("Variable not initialized")
var errUnknownLabel = errors.New("Subroutine not initialized")
var errUnbalancedReturn = errors.New("RETURN without GOSUB")
var errNextWithoutFor = errors.New("NEXT without active FOR")
var errOperandTypes = errors.New("Invalid operand types")
var errDivisionByZero = errors.New("Dividing by zero is not allowed")
var errModulusByZero = errors.New("Modulus by zero is undefined")
var errNonBoolCondition = errors.New("Condition is not boolean")
var errInvalidInput = errors.New("Invalid input for a number")
var errInputExhausted = errors.New("No input available")
var errStepLimit = errors.New("Step limit exceeded")

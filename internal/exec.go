package internal

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// exec runs a flattened program. pc is the position of the next statement;
// it is advanced before a statement runs so jumps simply overwrite it.
type exec struct {
	program *program
	env     *env
	printer IPrinter
	reader  IReader
	logger  *logrus.Logger

	pc       int
	steps    int
	maxSteps int
}

func (e *exec) interpret() error {
	e.pc = 0
	for e.pc < e.program.len() {
		s := e.program.stmts[e.pc]
		if e.maxSteps > 0 && e.steps >= e.maxSteps {
			return runtimeErr(errStepLimit, stmtToken(s), strconv.Itoa(e.maxSteps))
		}
		if e.logger.IsLevelEnabled(logrus.TraceLevel) {
			e.logger.WithFields(logrus.Fields{
				"pc":   e.pc,
				"line": stmtToken(s).line,
				"stmt": describe(s),
			}).Trace("exec")
		}
		e.pc++
		e.steps++
		if _, err := s.accept(e); err != nil {
			return err
		}
	}
	return nil
}

func (e *exec) evaluate(x expr) (value, error) {
	result, err := x.accept(e)
	if err != nil {
		return nil, err
	}
	return result.(value), nil
}

func (e *exec) visitAssignStmt(stmt *assignStmt) (R, error) {
	value, err := e.evaluate(stmt.value)
	if err != nil {
		return nil, err
	}
	e.env.define(stmt.name.lexeme, value)
	return nil, nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) (R, error) {
	parts := make([]string, len(stmt.elements))
	for i, element := range stmt.elements {
		value, err := e.evaluate(element)
		if err != nil {
			return nil, err
		}
		parts[i] = value.String()
	}
	_, err := e.printer.Println(strings.Join(parts, " "))
	return nil, err
}

func (e *exec) visitInputStmt(stmt *inputStmt) (R, error) {
	if stmt.prompt != nil {
		if _, err := e.printer.Print(stmt.prompt.literal.(string)); err != nil {
			return nil, err
		}
	}
	line, err := e.reader.ReadLine()
	if errors.Is(err, io.EOF) {
		return nil, runtimeErr(errInputExhausted, stmt.keyword, stmt.name.lexeme)
	}
	if err != nil {
		return nil, err
	}
	number, ok := parseInput(line)
	if !ok {
		return nil, runtimeErr(errInvalidInput, stmt.keyword, line)
	}
	e.env.define(stmt.name.lexeme, basicNumber(number))
	return nil, nil
}

// parseInput accepts finite decimal numbers only; hex floats, infinities
// and NaN are rejected.
func parseInput(line string) (float64, bool) {
	text := strings.TrimSpace(line)
	if strings.ContainsAny(text, "xX") {
		return 0, false
	}
	number, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(number, 0) || math.IsNaN(number) {
		return 0, false
	}
	return number, true
}

func (e *exec) visitIfStmt(stmt *ifStmt) (R, error) {
	condition, err := e.evaluate(stmt.condition)
	if err != nil {
		return nil, err
	}
	truth, ok := condition.(basicBool)
	if !ok {
		return nil, runtimeErr(errNonBoolCondition, stmt.keyword, condition.kind().String())
	}
	if !truth {
		e.pc = stmt.elseBranch
	}
	return nil, nil
}

// visitElseStmt is reached only by falling off the end of a THEN branch
func (e *exec) visitElseStmt(stmt *elseStmt) (R, error) {
	e.pc = stmt.endif
	return nil, nil
}

func (e *exec) visitForStmt(stmt *forStmt) (R, error) {
	position := e.pc - 1
	start, err := e.bound(stmt.start, stmt.keyword)
	if err != nil {
		return nil, err
	}
	end, err := e.bound(stmt.end, stmt.keyword)
	if err != nil {
		return nil, err
	}
	if start > end {
		e.env.leaveLoop(position)
		e.pc = stmt.exit
		return nil, nil
	}
	e.env.enterLoop(position, start, end)
	e.env.define(stmt.name.lexeme, basicNumber(start))
	return nil, nil
}

// bound evaluates a FOR limit and truncates it toward zero, saturating to
// the int32 range. NaN becomes zero.
func (e *exec) bound(x expr, keyword *token) (int64, error) {
	value, err := e.evaluate(x)
	if err != nil {
		return 0, err
	}
	number, ok := value.(basicNumber)
	if !ok {
		return 0, runtimeErr(errOperandTypes, keyword, "FOR bound is "+value.kind().String())
	}
	f := float64(number)
	switch {
	case math.IsNaN(f):
		return 0, nil
	case f >= math.MaxInt32:
		return math.MaxInt32, nil
	case f <= math.MinInt32:
		return math.MinInt32, nil
	}
	return int64(f), nil
}

func (e *exec) visitNextStmt(stmt *nextStmt) (R, error) {
	frame, err := e.env.loop(stmt.loop, stmt.keyword)
	if err != nil {
		return nil, err
	}
	frame.counter++
	if frame.counter > frame.end {
		e.env.leaveLoop(stmt.loop)
		return nil, nil
	}
	header := e.program.stmts[stmt.loop].(*forStmt)
	e.env.define(header.name.lexeme, basicNumber(frame.counter))
	e.pc = stmt.loop + 1
	return nil, nil
}

func (e *exec) visitGotoStmt(stmt *gotoStmt) (R, error) {
	position, err := e.env.labelPosition(stmt.label)
	if err != nil {
		return nil, err
	}
	e.pc = position
	return nil, nil
}

func (e *exec) visitGosubStmt(stmt *gosubStmt) (R, error) {
	position, err := e.env.labelPosition(stmt.label)
	if err != nil {
		return nil, err
	}
	e.env.pushReturn(e.pc)
	e.pc = position
	return nil, nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) (R, error) {
	position, err := e.env.popReturn(stmt.keyword)
	if err != nil {
		return nil, err
	}
	e.pc = position
	return nil, nil
}

func (e *exec) visitLabelStmt(stmt *labelStmt) (R, error) {
	return nil, nil
}

func (e *exec) visitEndStmt(stmt *endStmt) (R, error) {
	e.pc = e.program.len()
	return nil, nil
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (R, error) {
	return expr.value, nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) (R, error) {
	value, err := e.env.get(expr.name)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return expr.expression.accept(e)
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	apply := operations[binaryOperators[expr.operator.token]]
	result, err := apply(left, right)
	if errors.Is(err, errOperandTypes) {
		detail := fmt.Sprintf("%s %s %s", left.kind(), expr.operator.lexeme, right.kind())
		return nil, runtimeErr(err, expr.operator, detail)
	}
	if err != nil {
		return nil, runtimeErr(err, expr.operator, "")
	}
	return result, nil
}

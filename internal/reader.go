package internal

import (
	"fmt"
	"strconv"
	"strings"
)

//R generic type
type R interface{}

// listing renders the flattened program, one position per line, indenting
// the ranges owned by IF and FOR.
func (p *program) listing() string {
	depth := make([]int, len(p.stmts)+1)
	for i, s := range p.stmts {
		switch st := s.(type) {
		case *ifStmt:
			depth[i+1]++
			depth[st.endif]--
		case *elseStmt:
			depth[i]--
			depth[i+1]++
		case *forStmt:
			depth[i+1]++
			depth[st.exit-1]--
		}
	}

	var out strings.Builder
	level := 0
	for i, s := range p.stmts {
		level += depth[i]
		fmt.Fprintf(&out, "%04d  %s%s\n", i, strings.Repeat("  ", level), describe(s))
	}
	return out.String()
}

// labelListing lists declared labels in name order
func (p *program) labelListing() string {
	var out strings.Builder
	p.labels.each(func(l labelEntry) bool {
		fmt.Fprintf(&out, "%s\t%04d\tline %d\n", l.name, l.position, l.line)
		return true
	})
	return out.String()
}

func describe(s stmt) string {
	out, _ := s.accept(stringVisitor{})
	return out.(string)
}

type stringVisitor struct{}

func (v stringVisitor) str(x expr) string {
	out, _ := x.accept(v)
	return out.(string)
}

func (v stringVisitor) visitAssignStmt(stmt *assignStmt) (R, error) {
	return fmt.Sprintf("(set %s %s)", stmt.name.lexeme, v.str(stmt.value)), nil
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) (R, error) {
	out := "(print"
	for _, element := range stmt.elements {
		out += " " + v.str(element)
	}
	return out + ")", nil
}

func (v stringVisitor) visitInputStmt(stmt *inputStmt) (R, error) {
	if stmt.prompt != nil {
		return fmt.Sprintf("(input %s %s)", strconv.Quote(stmt.prompt.literal.(string)), stmt.name.lexeme), nil
	}
	return fmt.Sprintf("(input %s)", stmt.name.lexeme), nil
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) (R, error) {
	if stmt.elseBranch != stmt.endif {
		return fmt.Sprintf("(if %s else:%04d endif:%04d)", v.str(stmt.condition), stmt.elseBranch, stmt.endif), nil
	}
	return fmt.Sprintf("(if %s endif:%04d)", v.str(stmt.condition), stmt.endif), nil
}

func (v stringVisitor) visitElseStmt(stmt *elseStmt) (R, error) {
	return fmt.Sprintf("(else endif:%04d)", stmt.endif), nil
}

func (v stringVisitor) visitForStmt(stmt *forStmt) (R, error) {
	return fmt.Sprintf("(for %s %s %s exit:%04d)", stmt.name.lexeme, v.str(stmt.start), v.str(stmt.end), stmt.exit), nil
}

func (v stringVisitor) visitNextStmt(stmt *nextStmt) (R, error) {
	return fmt.Sprintf("(next for:%04d)", stmt.loop), nil
}

func (v stringVisitor) visitGotoStmt(stmt *gotoStmt) (R, error) {
	return "(goto " + stmt.label.lexeme + ")", nil
}

func (v stringVisitor) visitGosubStmt(stmt *gosubStmt) (R, error) {
	return "(gosub " + stmt.label.lexeme + ")", nil
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) (R, error) {
	return "(return)", nil
}

func (v stringVisitor) visitLabelStmt(stmt *labelStmt) (R, error) {
	return "(label " + stmt.name.lexeme + ")", nil
}

func (v stringVisitor) visitEndStmt(stmt *endStmt) (R, error) {
	return "(end)", nil
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) (R, error) {
	if s, isString := expr.value.(basicString); isString {
		return strconv.Quote(string(s)), nil
	}
	return expr.value.String(), nil
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.lexeme, nil
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return expr.expression.accept(v)
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, v.str(expr.left), v.str(expr.right)), nil
}

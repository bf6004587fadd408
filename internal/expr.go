package internal

type expr interface {
	accept(exprVisitor) (R, error)
}

type exprVisitor interface {
	visitLiteralExpr(expr *literalExpr) (R, error)
	visitVariableExpr(expr *variableExpr) (R, error)
	visitGroupingExpr(expr *groupingExpr) (R, error)
	visitBinaryExpr(expr *binaryExpr) (R, error)
}

type literalExpr struct {
	token *token
	value value
}

func (s *literalExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitLiteralExpr(s)
}

type variableExpr struct {
	name *token
}

func (s *variableExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitVariableExpr(s)
}

type groupingExpr struct {
	paren      *token
	expression expr
}

func (s *groupingExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitGroupingExpr(s)
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (s *binaryExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitBinaryExpr(s)
}

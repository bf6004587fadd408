package internal

type stmt interface {
	accept(stmtVisitor) (R, error)
}

type stmtVisitor interface {
	visitAssignStmt(stmt *assignStmt) (R, error)
	visitPrintStmt(stmt *printStmt) (R, error)
	visitInputStmt(stmt *inputStmt) (R, error)
	visitIfStmt(stmt *ifStmt) (R, error)
	visitElseStmt(stmt *elseStmt) (R, error)
	visitForStmt(stmt *forStmt) (R, error)
	visitNextStmt(stmt *nextStmt) (R, error)
	visitGotoStmt(stmt *gotoStmt) (R, error)
	visitGosubStmt(stmt *gosubStmt) (R, error)
	visitReturnStmt(stmt *returnStmt) (R, error)
	visitLabelStmt(stmt *labelStmt) (R, error)
	visitEndStmt(stmt *endStmt) (R, error)
}

type assignStmt struct {
	name  *token
	value expr
}

func (s *assignStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitAssignStmt(s)
}

type printStmt struct {
	keyword  *token
	elements []expr
}

func (s *printStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitPrintStmt(s)
}

type inputStmt struct {
	keyword *token
	prompt  *token
	name    *token
}

func (s *inputStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitInputStmt(s)
}

type ifStmt struct {
	keyword    *token
	condition  expr
	elseBranch int
	endif      int
}

func (s *ifStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitIfStmt(s)
}

type elseStmt struct {
	keyword *token
	endif   int
}

func (s *elseStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitElseStmt(s)
}

type forStmt struct {
	keyword *token
	name    *token
	start   expr
	end     expr
	exit    int
}

func (s *forStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitForStmt(s)
}

type nextStmt struct {
	keyword *token
	loop    int
}

func (s *nextStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitNextStmt(s)
}

type gotoStmt struct {
	keyword *token
	label   *token
}

func (s *gotoStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitGotoStmt(s)
}

type gosubStmt struct {
	keyword *token
	label   *token
}

func (s *gosubStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitGosubStmt(s)
}

type returnStmt struct {
	keyword *token
}

func (s *returnStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitReturnStmt(s)
}

type labelStmt struct {
	name *token
}

func (s *labelStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitLabelStmt(s)
}

type endStmt struct {
	keyword *token
}

func (s *endStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitEndStmt(s)
}

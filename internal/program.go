package internal

// program is the flattened instruction stream. IF and FOR bodies are
// inlined as contiguous ranges so every jump is a plain position change.
type program struct {
	stmts  []stmt
	labels *labelTable
}

func newProgram() *program {
	return &program{labels: newLabelTable()}
}

// emit appends a statement and returns its position
func (p *program) emit(s stmt) int {
	p.stmts = append(p.stmts, s)
	return len(p.stmts) - 1
}

// position is where the next emitted statement will land
func (p *program) position() int {
	return len(p.stmts)
}

func (p *program) len() int {
	return len(p.stmts)
}

// jumpTarget returns the label token carried by GOTO and GOSUB statements
func jumpTarget(s stmt) (*token, bool) {
	switch st := s.(type) {
	case *gotoStmt:
		return st.label, true
	case *gosubStmt:
		return st.label, true
	}
	return nil, false
}

// unresolved returns a failure for every GOTO/GOSUB whose label was never
// declared, in program order
func (p *program) unresolved() []*Error {
	var errs []*Error
	for _, s := range p.stmts {
		label, ok := jumpTarget(s)
		if !ok {
			continue
		}
		if _, found := p.labels.lookup(label.lexeme); !found {
			errs = append(errs, syntaxErr(errUnresolvedLabel, label, label.lexeme))
		}
	}
	return errs
}

// stmtToken returns the token a statement is reported against
func stmtToken(s stmt) *token {
	switch st := s.(type) {
	case *assignStmt:
		return st.name
	case *printStmt:
		return st.keyword
	case *inputStmt:
		return st.keyword
	case *ifStmt:
		return st.keyword
	case *elseStmt:
		return st.keyword
	case *forStmt:
		return st.keyword
	case *nextStmt:
		return st.keyword
	case *gotoStmt:
		return st.keyword
	case *gosubStmt:
		return st.keyword
	case *returnStmt:
		return st.keyword
	case *labelStmt:
		return st.name
	case *endStmt:
		return st.keyword
	}
	return &token{}
}

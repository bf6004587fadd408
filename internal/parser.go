package internal

// parser pulls tokens from the lexer one at a time and emits statements
// directly into a flat program. Nested IF/FOR bodies become contiguous
// ranges whose boundaries are patched once the closing keyword is seen.
type parser struct {
	lexer     *lexer
	lookahead token
	filled    bool
	prev      *token
	lexErr    error

	program *program
}

func newParser(l *lexer) *parser {
	return &parser{lexer: l}
}

func (p *parser) parse() (*program, error) {
	p.program = newProgram()
	end, err := p.block()
	if err != nil {
		return nil, err
	}
	if end.token != tkEOF {
		return nil, p.fail(errUnopenedBlock, end, end.lexeme)
	}
	if p.lexErr != nil {
		return nil, p.lexErr
	}
	return p.program, nil
}

// block parses statements until end of input or a block closing keyword
// (ELSE, ENDIF, NEXT), which is returned without being consumed.
func (p *parser) block() (*token, error) {
	for {
		p.skipSeparators()
		tk := p.peek()
		if tk.token == tkEOF || isBlockEnd(tk) {
			return tk, nil
		}
		if err := p.statement(); err != nil {
			return nil, err
		}
	}
}

func isBlockEnd(tk *token) bool {
	switch tk.command() {
	case cmdElse, cmdEndif, cmdNext:
		return true
	}
	return false
}

func (p *parser) skipSeparators() {
	for p.match(tkNewline, tkSemicolon) {
	}
}

func (p *parser) statement() error {
	if p.check(tkLabel) {
		return p.label()
	}
	if p.check(tkVariable) {
		return p.assignment()
	}
	tk := p.advance()
	switch tk.command() {
	case cmdPrint:
		return p.print(tk)
	case cmdInput:
		return p.input(tk)
	case cmdIf:
		return p.ifStmt(tk)
	case cmdFor:
		return p.forLoop(tk)
	case cmdGoto:
		label, err := p.labelName()
		if err != nil {
			return err
		}
		p.program.emit(&gotoStmt{keyword: tk, label: label})
		return nil
	case cmdGosub:
		label, err := p.labelName()
		if err != nil {
			return err
		}
		p.program.emit(&gosubStmt{keyword: tk, label: label})
		return nil
	case cmdReturn:
		p.program.emit(&returnStmt{keyword: tk})
		return nil
	case cmdEnd:
		p.program.emit(&endStmt{keyword: tk})
		return nil
	}
	return p.fail(errUndefinedStmt, tk, tk.lexeme)
}

func (p *parser) label() error {
	name := p.advance()
	if !p.program.labels.declare(name.lexeme, p.program.position(), name.line) {
		return p.fail(errDuplicateLabel, name, name.lexeme)
	}
	p.program.emit(&labelStmt{name: name})
	return nil
}

func (p *parser) assignment() error {
	name := p.advance()
	if _, err := p.consume(tkEqual, errExpectedEqual); err != nil {
		return err
	}
	value, err := p.expression()
	if err != nil {
		return err
	}
	p.program.emit(&assignStmt{name: name, value: value})
	return nil
}

// print parses a comma or semicolon separated list. A separator followed by
// anything that can start an expression continues the list, so
// `PRINT A; B = 2` prints A and the comparison B = 2 instead of assigning B.
func (p *parser) print(keyword *token) error {
	st := &printStmt{keyword: keyword}
	for canStartExpr(p.peek()) {
		element, err := p.expression()
		if err != nil {
			return err
		}
		st.elements = append(st.elements, element)
		// A separator not followed by another element ends the statement.
		if !p.match(tkComma, tkSemicolon) {
			break
		}
	}
	p.program.emit(st)
	return nil
}

func (p *parser) input(keyword *token) error {
	st := &inputStmt{keyword: keyword}
	if p.check(tkString) {
		st.prompt = p.advance()
		p.match(tkComma, tkSemicolon)
	}
	name, err := p.consume(tkVariable, errExpectedVariable)
	if err != nil {
		return err
	}
	st.name = name
	p.program.emit(st)
	return nil
}

func (p *parser) ifStmt(keyword *token) error {
	condition, err := p.expression()
	if err != nil {
		return err
	}
	if _, err := p.consumeCommand(cmdThen, errExpectedThen); err != nil {
		return err
	}

	st := &ifStmt{keyword: keyword, condition: condition}
	p.program.emit(st)

	end, err := p.block()
	if err != nil {
		return err
	}

	if end.command() == cmdElse {
		elseKeyword := p.advance()
		jump := &elseStmt{keyword: elseKeyword}
		p.program.emit(jump)
		st.elseBranch = p.program.position()

		end, err = p.block()
		if err != nil {
			return err
		}
		if end.command() != cmdEndif {
			return p.fail(errMissingEndif, keyword, "")
		}
		p.advance()
		jump.endif = p.program.position()
		st.endif = jump.endif
		return nil
	}

	if end.command() != cmdEndif {
		return p.fail(errMissingEndif, keyword, "")
	}
	p.advance()
	st.elseBranch = p.program.position()
	st.endif = st.elseBranch
	return nil
}

func (p *parser) forLoop(keyword *token) error {
	name, err := p.consume(tkVariable, errExpectedVariable)
	if err != nil {
		return err
	}
	if _, err := p.consume(tkEqual, errExpectedEqual); err != nil {
		return err
	}
	start, err := p.expression()
	if err != nil {
		return err
	}
	if _, err := p.consumeCommand(cmdTo, errExpectedTo); err != nil {
		return err
	}
	end, err := p.expression()
	if err != nil {
		return err
	}

	st := &forStmt{keyword: keyword, name: name, start: start, end: end}
	loop := p.program.emit(st)

	closing, err := p.block()
	if err != nil {
		return err
	}
	if closing.command() != cmdNext {
		return p.fail(errMissingNext, keyword, name.lexeme)
	}
	next := p.advance()
	if p.check(tkVariable) {
		variable := p.advance()
		if variable.lexeme != name.lexeme {
			return p.fail(errNextMismatch, variable, variable.lexeme)
		}
	}
	p.program.emit(&nextStmt{keyword: next, loop: loop})
	st.exit = p.program.position()
	return nil
}

// labelName accepts any identifier, including one spelt like a command
func (p *parser) labelName() (*token, error) {
	if p.check(tkVariable) || p.check(tkCommand) {
		return p.advance(), nil
	}
	return nil, p.fail(errExpectedLabel, p.peek(), p.peek().lexeme)
}

func (p *parser) expression() (expr, error) {
	return p.comparison()
}

func (p *parser) comparison() (expr, error) {
	expr, err := p.addition()
	if err != nil {
		return nil, err
	}
	for p.match(tkEqual, tkNotEqual, tkLess, tkLessEqual, tkGreater, tkGreaterEqual) {
		operator := p.previous()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) addition() (expr, error) {
	expr, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) multiplication() (expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(tkStar, tkSlash, tkMod) {
		operator := p.previous()
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) primary() (expr, error) {
	if p.match(tkNumber) {
		tk := p.previous()
		return &literalExpr{token: tk, value: basicNumber(tk.literal.(float64))}, nil
	}
	if p.match(tkString) {
		tk := p.previous()
		return &literalExpr{token: tk, value: basicString(tk.literal.(string))}, nil
	}
	if p.match(tkVariable) {
		return &variableExpr{name: p.previous()}, nil
	}
	if p.match(tkLeftParen) {
		paren := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(tkRightParen) {
			return nil, p.fail(errUnclosedParen, paren, "")
		}
		return &groupingExpr{paren: paren, expression: expr}, nil
	}
	tk := p.peek()
	return nil, p.fail(errUndefinedExpr, tk, tk.lexeme)
}

func canStartExpr(tk *token) bool {
	switch tk.token {
	case tkNumber, tkString, tkVariable, tkLeftParen:
		return true
	}
	return false
}

// fail builds a syntax failure, unless the lexer already failed: a broken
// token stream is reported as the lexical error it really is.
func (p *parser) fail(err error, tk *token, detail string) error {
	if p.lexErr != nil {
		return p.lexErr
	}
	return syntaxErr(err, tk, detail)
}

func (p *parser) consume(tk tokenType, err error) (*token, error) {
	if p.check(tk) {
		return p.advance(), nil
	}
	return nil, p.fail(err, p.peek(), p.peek().lexeme)
}

func (p *parser) consumeCommand(cmd command, err error) (*token, error) {
	if p.peek().command() == cmd {
		return p.advance(), nil
	}
	return nil, p.fail(err, p.peek(), p.peek().lexeme)
}

func (p *parser) advance() *token {
	tk := *p.peek()
	if tk.token != tkEOF {
		p.filled = false
	}
	p.prev = &tk
	return p.prev
}

func (p *parser) previous() *token {
	return p.prev
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token tokenType) bool {
	return p.peek().token == token
}

// peek fills the single token of lookahead. A lexical failure is kept
// aside and surfaces as end of input.
func (p *parser) peek() *token {
	if !p.filled {
		tk, err := p.lexer.next()
		if err != nil {
			if p.lexErr == nil {
				p.lexErr = err
			}
			tk = token{token: tkEOF, line: p.lexer.line}
		}
		p.lookahead = tk
		p.filled = true
	}
	return &p.lookahead
}

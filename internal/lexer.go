package internal

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexer produces tokens one at a time on demand
type lexer struct {
	source  string
	start   int
	current int
	line    int
}

func newLexer(source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
	}
}

// reset rewinds the lexer to the beginning of the source
func (l *lexer) reset() {
	l.start = 0
	l.current = 0
	l.line = 1
}

// scan rewinds and collects every token up to and including EOF
func (l *lexer) scan() ([]token, error) {
	l.reset()
	var tokens []token
	for {
		tk, err := l.next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tk)
		if tk.token == tkEOF {
			return tokens, nil
		}
	}
}

// next returns the following token, or an EOF token once the source is exhausted
func (l *lexer) next() (token, error) {
	l.skipWhitespace()
	l.start = l.current

	if l.isAtEnd() {
		return l.emit(tkEOF, nil), nil
	}

	c := l.advance()
	switch c {
	case '\n':
		tk := l.emit(tkNewline, nil)
		l.line++
		return tk, nil
	case ';':
		return l.emit(tkSemicolon, nil), nil
	case ',':
		return l.emit(tkComma, nil), nil
	case '(':
		return l.emit(tkLeftParen, nil), nil
	case ')':
		return l.emit(tkRightParen, nil), nil
	case '+':
		return l.emit(tkPlus, nil), nil
	case '-':
		return l.emit(tkMinus, nil), nil
	case '*':
		return l.emit(tkStar, nil), nil
	case '/':
		return l.emit(tkSlash, nil), nil
	case '%':
		return l.emit(tkMod, nil), nil
	case '=':
		return l.emit(tkEqual, nil), nil
	case '<':
		if l.match('=') {
			return l.emit(tkLessEqual, nil), nil
		}
		if l.match('>') {
			return l.emit(tkNotEqual, nil), nil
		}
		return l.emit(tkLess, nil), nil
	case '>':
		if l.match('=') {
			return l.emit(tkGreaterEqual, nil), nil
		}
		return l.emit(tkGreater, nil), nil
	case '"':
		return l.string()
	}

	if isDigit(c) {
		return l.number(), nil
	}
	if unicode.IsLetter(c) {
		return l.identifier(), nil
	}
	return l.emit(tkUnknown, nil), nil
}

func (l *lexer) string() (token, error) {
	line := l.line
	var sb strings.Builder
	for !l.isAtEnd() {
		c := l.advance()
		switch c {
		case '"':
			tk := l.emit(tkString, sb.String())
			tk.line = line
			return tk, nil
		case '\\':
			if l.match('"') {
				sb.WriteRune('"')
			} else if l.match('\\') {
				sb.WriteRune('\\')
			} else {
				sb.WriteRune(c)
			}
			continue
		case '\n':
			l.line++
		}
		sb.WriteRune(c)
	}
	return token{}, &Error{Phase: phaseLexical, Err: errUnclosedString, Line: line}
}

func (l *lexer) number() token {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	return l.emit(tkNumber, literal)
}

func (l *lexer) identifier() token {
	for {
		c := l.peek()
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		l.advance()
	}

	name := l.source[l.start:l.current]

	if l.match(':') {
		tk := l.emit(tkLabel, nil)
		tk.lexeme = name
		return tk
	}

	if cmd := lookupCommand(name); cmd != cmdNone {
		return l.emit(tkCommand, cmd)
	}

	return l.emit(tkVariable, nil)
}

func (l *lexer) skipWhitespace() {
	for !l.isAtEnd() {
		c := l.peek()
		if c == '\n' || !unicode.IsSpace(c) {
			return
		}
		l.advance()
	}
}

func (l *lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return c
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return c
}

func (l *lexer) match(c rune) bool {
	if l.peek() != c {
		return false
	}
	l.advance()
	return true
}

func (l *lexer) emit(tk tokenType, literal interface{}) token {
	return token{
		token:   tk,
		lexeme:  l.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	}
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

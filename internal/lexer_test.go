package internal

import (
	"errors"
	"testing"
)

func scanTypes(t *testing.T, source string) []token {
	t.Helper()
	tokens, err := newLexer(source).scan()
	if err != nil {
		t.Fatalf("scanning %q: %v", source, err)
	}
	return tokens
}

func TestLexer(t *testing.T) {
	tokens := scanTypes(t, "LOOP: x1 = (2.5 + 3) * 4 % 2 / 1 - 1 <> 1 <= 2 >= 3 < 4 > 5, \"hi\"; @\n")
	expected := []tokenType{
		tkLabel, tkVariable, tkEqual, tkLeftParen, tkNumber, tkPlus, tkNumber, tkRightParen,
		tkStar, tkNumber, tkMod, tkNumber, tkSlash, tkNumber, tkMinus, tkNumber,
		tkNotEqual, tkNumber, tkLessEqual, tkNumber, tkGreaterEqual, tkNumber,
		tkLess, tkNumber, tkGreater, tkNumber, tkComma, tkString, tkSemicolon,
		tkUnknown, tkNewline, tkEOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tk := range tokens {
		if tk.token != expected[i] {
			t.Errorf("token %d: expected %s, got %s", i, expected[i], tk)
		}
	}

	if tokens[0].lexeme != "LOOP" {
		t.Errorf("label lexeme should drop the colon, got %q", tokens[0].lexeme)
	}
	if tokens[4].literal.(float64) != 2.5 {
		t.Errorf("expected 2.5, got %v", tokens[4].literal)
	}
	if tokens[27].literal.(string) != "hi" {
		t.Errorf("expected hi, got %v", tokens[27].literal)
	}
}

func TestLexerCommands(t *testing.T) {
	tokens := scanTypes(t, "print Goto GOSUB endif Next x")
	expected := []command{cmdPrint, cmdGoto, cmdGosub, cmdEndif, cmdNext, cmdNone}
	for i, cmd := range expected {
		if got := tokens[i].command(); got != cmd {
			t.Errorf("token %d: expected %s, got %s", i, cmd, got)
		}
	}
	if tokens[5].token != tkVariable {
		t.Errorf("expected a variable, got %s", tokens[5])
	}
}

func TestLexerStrings(t *testing.T) {
	tokens := scanTypes(t, `"say \"hi\" \\ now"`)
	if tokens[0].literal.(string) != `say "hi" \ now` {
		t.Errorf("unexpected string literal %q", tokens[0].literal)
	}

	tokens = scanTypes(t, "\"two\nlines\" X")
	if tokens[0].line != 1 {
		t.Errorf("a string reports the line it starts on, got %d", tokens[0].line)
	}
	if tokens[1].line != 2 {
		t.Errorf("newlines inside strings should count, got line %d", tokens[1].line)
	}

	_, err := newLexer("PRINT 1\nPRINT \"open").scan()
	var e *Error
	if !errors.As(err, &e) || !errors.Is(err, errUnclosedString) || e.Line != 2 || e.Phase != phaseLexical {
		t.Errorf("expected an unclosed string on line 2, got %v", err)
	}
}

func TestLexerLines(t *testing.T) {
	tokens := scanTypes(t, "A\n\nB")
	lines := []int{1, 1, 2, 3, 3}
	for i, line := range lines {
		if tokens[i].line != line {
			t.Errorf("token %d (%s): expected line %d", i, tokens[i], line)
		}
	}

	l := newLexer("A = 1")
	first, _ := l.scan()
	second, _ := l.scan()
	if len(first) != len(second) {
		t.Errorf("scanning twice should give the same tokens: %v %v", first, second)
	}
}

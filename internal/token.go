package internal

import (
	"fmt"
	"strings"
)

// tokenType Holds a token
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Statement separators.
	// \n, ;
	tkNewline
	tkSemicolon

	// Single-character tokens.
	// (, ), ',', +, -, *, /, %, =
	tkLeftParen
	tkRightParen
	tkComma
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkMod
	tkEqual

	// One or two character tokens.
	// <>, <, <=, >, >=
	tkNotEqual
	tkLess
	tkLessEqual
	tkGreater
	tkGreaterEqual

	// Literals.
	// *variable*, *label:*, string, number
	tkVariable
	tkLabel
	tkString
	tkNumber

	// Reserved command word, see commands.
	tkCommand

	tkUnknown
)

var tokenNames = map[tokenType]string{
	tkEOF:          "end of input",
	tkNewline:      "end of line",
	tkSemicolon:    ";",
	tkLeftParen:    "(",
	tkRightParen:   ")",
	tkComma:        ",",
	tkPlus:         "+",
	tkMinus:        "-",
	tkStar:         "*",
	tkSlash:        "/",
	tkMod:          "%",
	tkEqual:        "=",
	tkNotEqual:     "<>",
	tkLess:         "<",
	tkLessEqual:    "<=",
	tkGreater:      ">",
	tkGreaterEqual: ">=",
	tkVariable:     "variable",
	tkLabel:        "label",
	tkString:       "string",
	tkNumber:       "number",
	tkCommand:      "command",
	tkUnknown:      "unknown",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

// command is one of the fixed command words of the language
type command int

const (
	cmdNone command = iota
	cmdPrint
	cmdIf
	cmdElse
	cmdFor
	cmdGoto
	cmdGosub
	cmdThen
	cmdEndif
	cmdTo
	cmdNext
	cmdReturn
	cmdEnd
	cmdInput
)

var commands = map[string]command{
	"PRINT":  cmdPrint,
	"IF":     cmdIf,
	"ELSE":   cmdElse,
	"FOR":    cmdFor,
	"GOTO":   cmdGoto,
	"GOSUB":  cmdGosub,
	"THEN":   cmdThen,
	"ENDIF":  cmdEndif,
	"TO":     cmdTo,
	"NEXT":   cmdNext,
	"RETURN": cmdReturn,
	"END":    cmdEnd,
	"INPUT":  cmdInput,
}

// lookupCommand matches command words case-insensitively
func lookupCommand(word string) command {
	return commands[strings.ToUpper(word)]
}

func (c command) String() string {
	for name, cmd := range commands {
		if cmd == c {
			return name
		}
	}
	return "NONE"
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

// command returns the command word carried by a tkCommand token
func (t *token) command() command {
	if t.token != tkCommand {
		return cmdNone
	}
	cmd, _ := t.literal.(command)
	return cmd
}

func (t token) String() string {
	switch t.token {
	case tkEOF, tkNewline:
		return fmt.Sprintf("%d: %s", t.line, t.token)
	}
	return fmt.Sprintf("%d: %s %q", t.line, t.token, t.lexeme)
}

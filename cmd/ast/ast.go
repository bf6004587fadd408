package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go"
//go:generate sh -c "go run . Stmt > ../../internal/stmt.go"

var definitions = map[string][]string{
	"Stmt": {
		"Assign: name *token, value expr",
		"Print: keyword *token, elements []expr",
		"Input: keyword *token, prompt *token, name *token",
		"If: keyword *token, condition expr, elseBranch int, endif int",
		"Else: keyword *token, endif int",
		"For: keyword *token, name *token, start expr, end expr, exit int",
		"Next: keyword *token, loop int",
		"Goto: keyword *token, label *token",
		"Gosub: keyword *token, label *token",
		"Return: keyword *token",
		"Label: name *token",
		"End: keyword *token",
	},
	"Expr": {
		"Literal: token *token, value value",
		"Variable: name *token",
		"Grouping: paren *token, expression expr",
		"Binary: left expr, operator *token, right expr",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast <Expr|Stmt>")
		os.Exit(1)
	}
	types, ok := definitions[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(1)
	}
	out, err := generateAst(os.Args[1], types)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func generateAst(baseName string, types []string) (string, error) {
	base := strings.ToLower(baseName)
	out := "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	out += "\taccept(" + base + "Visitor) (R, error)\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", base)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		out += "\tvisit" + name + baseName + "(" + base + " *" + structName(baseName, name) + ") (R, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		if len(typeDef) != 2 {
			return "", fmt.Errorf("malformed node definition %q", t)
		}
		out += generateType(baseName, strings.TrimSpace(typeDef[0]), strings.TrimSpace(typeDef[1]))
	}
	// End structs

	formatted, err := format.Source([]byte(out))
	if err != nil {
		return "", err
	}
	return string(formatted), nil
}

func structName(baseName, name string) string {
	return strings.ToLower(string(name[0])) + name[1:] + baseName
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := structName(baseName, name)
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) (R, error) {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}

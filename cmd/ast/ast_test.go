package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestGenerateAst(t *testing.T) {
	for baseName, types := range definitions {
		out, err := generateAst(baseName, types)
		if err != nil {
			t.Fatalf("%s: %v", baseName, err)
		}
		if _, err := parser.ParseFile(token.NewFileSet(), baseName+".go", out, 0); err != nil {
			t.Errorf("%s: generated code does not parse: %v", baseName, err)
		}
		base := strings.ToLower(baseName)
		if !strings.Contains(out, "type "+base+"Visitor interface {") {
			t.Errorf("%s: missing visitor interface", baseName)
		}
	}

	out, _ := generateAst("Stmt", definitions["Stmt"])
	if !strings.Contains(out, "func (s *gosubStmt) accept(visitor stmtVisitor) (R, error) {") {
		t.Error("missing accept method for gosubStmt")
	}
	if !strings.Contains(out, "visitNextStmt(stmt *nextStmt) (R, error)") {
		t.Error("missing visitor method for nextStmt")
	}
}

func TestGenerateAstMalformed(t *testing.T) {
	if _, err := generateAst("Expr", []string{"Broken"}); err == nil {
		t.Error("a definition without fields should fail")
	}
}

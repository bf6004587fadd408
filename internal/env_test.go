package internal

import (
	"errors"
	"testing"
)

func TestEnvVariables(t *testing.T) {
	e := newEnv(nil)
	name := &token{token: tkVariable, lexeme: "A", line: 3}

	_, err := e.get(name)
	var runtime *Error
	if !errors.As(err, &runtime) || !errors.Is(err, errUndefinedVar) || runtime.Line != 3 {
		t.Errorf("expected an undefined variable on line 3, got %v", err)
	}

	e.define("A", basicNumber(1))
	e.define("A", basicString("one"))
	v, err := e.get(name)
	if err != nil || v != basicString("one") {
		t.Errorf("expected the last assignment, got %v %v", v, err)
	}

	lower := &token{token: tkVariable, lexeme: "a"}
	if _, err := e.get(lower); err == nil {
		t.Error("variable names are case sensitive")
	}
}

func TestEnvReturns(t *testing.T) {
	e := newEnv(nil)
	keyword := &token{token: tkCommand, lexeme: "RETURN", line: 7}

	if _, err := e.popReturn(keyword); !errors.Is(err, errUnbalancedReturn) {
		t.Errorf("expected an unbalanced return, got %v", err)
	}

	e.pushReturn(4)
	e.pushReturn(9)
	for _, expected := range []int{9, 4} {
		position, err := e.popReturn(keyword)
		if err != nil || position != expected {
			t.Errorf("expected %d, got %d %v", expected, position, err)
		}
	}
}

func TestEnvLabels(t *testing.T) {
	labels := newLabelTable()
	labels.declare("SUB", 5, 2)
	e := newEnv(labels)

	position, err := e.labelPosition(&token{lexeme: "SUB"})
	if err != nil || position != 5 {
		t.Errorf("expected 5, got %d %v", position, err)
	}
	if _, err := e.labelPosition(&token{lexeme: "sub"}); !errors.Is(err, errUnknownLabel) {
		t.Errorf("expected an unknown label, got %v", err)
	}
}

func TestEnvLoops(t *testing.T) {
	e := newEnv(nil)
	keyword := &token{lexeme: "NEXT", line: 4}

	if _, err := e.loop(2, keyword); !errors.Is(err, errNextWithoutFor) {
		t.Errorf("expected NEXT without FOR, got %v", err)
	}

	e.enterLoop(2, 1, 3)
	frame, err := e.loop(2, keyword)
	if err != nil || frame.counter != 1 || frame.end != 3 {
		t.Errorf("unexpected frame %+v %v", frame, err)
	}

	e.enterLoop(2, 5, 6)
	frame, _ = e.loop(2, keyword)
	if frame.counter != 5 {
		t.Errorf("entering again should restart the loop, got %+v", frame)
	}

	e.leaveLoop(2)
	if _, err := e.loop(2, keyword); err == nil {
		t.Error("left loop should not be active")
	}
}

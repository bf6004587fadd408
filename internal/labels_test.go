package internal

import "testing"

func TestLabelTable(t *testing.T) {
	table := newLabelTable()
	for i, name := range []string{"PRINTIT", "ALPHA", "LOOP", "END"} {
		if !table.declare(name, i*2, i+1) {
			t.Errorf("%s should be new", name)
		}
	}
	if table.declare("LOOP", 40, 40) {
		t.Error("LOOP is already declared")
	}
	if entry, _ := table.lookup("LOOP"); entry.position != 4 || entry.line != 3 {
		t.Errorf("duplicate declaration should not overwrite, got %+v", entry)
	}
	if _, ok := table.lookup("MISSING"); ok {
		t.Error("MISSING was never declared")
	}
	if table.len() != 4 {
		t.Errorf("expected 4 labels, got %d", table.len())
	}

	var names []string
	table.each(func(l labelEntry) bool {
		names = append(names, l.name)
		return len(names) < 3
	})
	expected := []string{"ALPHA", "END", "LOOP"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, names)
		}
	}
}

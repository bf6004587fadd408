package internal

import "github.com/google/btree"

// labelEntry is a declared label and the program position it marks
type labelEntry struct {
	name     string
	position int
	line     int
}

func (l labelEntry) Less(than btree.Item) bool {
	return l.name < than.(labelEntry).name
}

// labelTable maps label names to program positions. It is filled while
// parsing and only read afterwards.
type labelTable struct {
	entries *btree.BTree
}

func newLabelTable() *labelTable {
	return &labelTable{entries: btree.New(4)}
}

// declare records a label; it reports false when the name is already taken
func (t *labelTable) declare(name string, position, line int) bool {
	if t.entries.Has(labelEntry{name: name}) {
		return false
	}
	t.entries.ReplaceOrInsert(labelEntry{name: name, position: position, line: line})
	return true
}

func (t *labelTable) lookup(name string) (labelEntry, bool) {
	item := t.entries.Get(labelEntry{name: name})
	if item == nil {
		return labelEntry{}, false
	}
	return item.(labelEntry), true
}

func (t *labelTable) len() int {
	return t.entries.Len()
}

// each visits labels in name order until fn returns false
func (t *labelTable) each(fn func(labelEntry) bool) {
	t.entries.Ascend(func(item btree.Item) bool {
		return fn(item.(labelEntry))
	})
}

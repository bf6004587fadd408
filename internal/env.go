package internal

// loopFrame is the private counter of an active FOR loop
type loopFrame struct {
	counter int64
	end     int64
}

// env is the single mutable object of a run: variables, GOSUB return
// positions and active FOR loops. Labels are read-only and shared with
// the program.
type env struct {
	values  map[string]value
	returns []int
	loops   map[int]*loopFrame
	labels  *labelTable
}

func newEnv(labels *labelTable) *env {
	if labels == nil {
		labels = newLabelTable()
	}
	return &env{
		values: make(map[string]value),
		loops:  make(map[int]*loopFrame),
		labels: labels,
	}
}

func (e *env) get(name *token) (value, error) {
	if value, ok := e.values[name.lexeme]; ok {
		return value, nil
	}
	return nil, runtimeErr(errUndefinedVar, name, name.lexeme)
}

func (e *env) define(name string, value value) {
	e.values[name] = value
}

func (e *env) pushReturn(position int) {
	e.returns = append(e.returns, position)
}

func (e *env) popReturn(keyword *token) (int, error) {
	if len(e.returns) == 0 {
		return 0, runtimeErr(errUnbalancedReturn, keyword, "")
	}
	position := e.returns[len(e.returns)-1]
	e.returns = e.returns[:len(e.returns)-1]
	return position, nil
}

func (e *env) labelPosition(label *token) (int, error) {
	entry, ok := e.labels.lookup(label.lexeme)
	if !ok {
		return 0, runtimeErr(errUnknownLabel, label, label.lexeme)
	}
	return entry.position, nil
}

func (e *env) enterLoop(position int, start, end int64) {
	e.loops[position] = &loopFrame{counter: start, end: end}
}

func (e *env) loop(position int, keyword *token) (*loopFrame, error) {
	frame, ok := e.loops[position]
	if !ok {
		return nil, runtimeErr(errNextWithoutFor, keyword, "")
	}
	return frame, nil
}

func (e *env) leaveLoop(position int) {
	delete(e.loops, position)
}

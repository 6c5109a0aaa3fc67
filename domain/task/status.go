package task

// Status represents the state of a task on the board.
type Status string

// Any status may be set from any other; there is no enforced order.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusFinished   Status = "finished"
)

// DefaultStatus is assigned when a task is created without a status.
const DefaultStatus = StatusTodo

// Statuses lists the accepted values in board order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusFinished}
}

// StatusValues returns the accepted values as plain strings.
func StatusValues() []string {
	all := Statuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

// Valid reports whether s is exactly one of the accepted literals.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

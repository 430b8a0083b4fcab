package model

type Move struct {
	From Position
	To   Position
}

// String formats the move the way it is typed at the prompt, e.g. "a7 a5".
func (m Move) String() string {
	return m.From.Notation() + " " + m.To.Notation()
}

package input

// Direction is the order in which keyboard focus moves between key zones.
type Direction int

const (
	Previous Direction = iota
	Next
)

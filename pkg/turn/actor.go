package turn

// Actor is the kind of participant playing a side.
type Actor int

const (
	Interactive Actor = iota
	Computational
)

func (a Actor) String() string {
	switch a {
	case Interactive:
		return "Interactive"
	case Computational:
		return "Computational"
	}
	return "Unknown"
}

// Toggle returns the other kind of actor.
func (a Actor) Toggle() Actor {
	if a == Interactive {
		return Computational
	}
	return Interactive
}

// Players assigns an actor to each side, white first.
type Players [2]Actor

// ToMove returns the actor of the side to move after moveCounter plies.
func (p Players) ToMove(moveCounter int) Actor {
	return p[moveCounter%2]
}

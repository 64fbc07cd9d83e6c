package engine

import "fmt"

// Status is the state of a game.
type Status uint8

const (
	Playing Status = iota
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// event drives a status transition.
type event uint8

const (
	eventPauseToggle event = iota
	eventSpawnBlocked
)

func (e event) String() string {
	switch e {
	case eventPauseToggle:
		return "pause-toggle"
	case eventSpawnBlocked:
		return "spawn-blocked"
	}
	return fmt.Sprintf("event(%d)", uint8(e))
}

// transition returns the status reached from s on e, and whether the
// transition exists. GameOver is terminal.
//
//	Playing --pause-->  Paused
//	Paused  --pause-->  Playing
//	Playing --blocked-> GameOver
func (s Status) transition(e event) (Status, bool) {
	switch s {
	case Playing:
		switch e {
		case eventPauseToggle:
			return Paused, true
		case eventSpawnBlocked:
			return GameOver, true
		}
	case Paused:
		switch e {
		case eventPauseToggle:
			return Playing, true
		case eventSpawnBlocked:
			return s, false
		}
	case GameOver:
		return s, false
	}
	panic(fmt.Sprintf("engine: unhandled transition %v on %v", s, e))
}

// accepts reports whether gameplay commands (move, rotate, drop, gravity)
// are processed in status s.
func (s Status) accepts() bool {
	return s == Playing
}

package engine

const (
	// linesPerLevel is the number of cleared lines needed to advance a level.
	linesPerLevel = 3
	// maxStartLines caps the cleared-line counter a game can start with.
	maxStartLines = 45
	// baseDropInterval is the number of ticks between gravity steps at level 0.
	baseDropInterval = 15
)

// MaxStartLevel is the highest initial level that still changes the start state.
const MaxStartLevel = maxStartLines / linesPerLevel

// LevelFor returns the level reached after clearing the given number of lines.
func LevelFor(clearedLines int) int {
	return clearedLines / linesPerLevel
}

// DropInterval returns the number of ticks between gravity steps at level.
func DropInterval(level int) int {
	return max(baseDropInterval-level, 1)
}

// startingLines converts an initial level into the cleared-line counter a new
// game starts with.
func startingLines(level int) int {
	return min(maxStartLines, level*linesPerLevel)
}

// dropDue reports whether gravity should fire on the current tick, and if so
// marks the tick as the last drop.
func (g *Game) dropDue() bool {
	if g.gameTicks >= g.dropTicks+DropInterval(g.Level()) {
		g.dropTicks = g.gameTicks
		return true
	}
	return false
}

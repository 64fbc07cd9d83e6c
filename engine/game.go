package engine

import (
	"fmt"
	"log/slog"
)

// Game owns the board, the active piece and the progression state of one
// match. Games are independent of each other. A Game is not safe for
// concurrent use: every command runs to completion, and callers read state
// between commands.
type Game struct {
	board        *Board
	active       ActivePiece
	next         Piece
	status       Status
	clearedLines int
	gameTicks    int
	dropTicks    int
	source       PieceSource
	logger       *slog.Logger
	stats        statsCollector
}

// New creates a game and spawns its first piece.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	source := cfg.Source
	if source == nil {
		source = NewRandomSource(cfg.Seed)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		board:        NewBoard(cfg.Width, cfg.Height),
		status:       Playing,
		clearedLines: startingLines(cfg.InitialLevel),
		source:       source,
		logger:       logger,
		stats:        newStatsCollector(),
	}
	logger.Debug("new game",
		"width", cfg.Width,
		"height", cfg.Height,
		"cleared_lines", g.clearedLines,
		"level", g.Level())

	g.next = g.draw()
	g.spawnNext()
	return g, nil
}

// Width returns the number of board columns.
func (g *Game) Width() int { return g.board.Width() }

// Height returns the number of board rows.
func (g *Game) Height() int { return g.board.Height() }

// Cell returns the value of the board cell at (x, y), including the blocks
// of the active piece.
func (g *Game) Cell(x, y int) (Piece, error) { return g.board.Get(x, y) }

// Status returns the current status.
func (g *Game) Status() Status { return g.status }

// Active returns a copy of the active piece. After the game is over it is
// the zero value.
func (g *Game) Active() ActivePiece { return g.active }

// Next returns the piece that spawns after the active one locks.
func (g *Game) Next() Piece { return g.next }

// ClearedLines returns the cleared-line counter, including the start bonus
// from the initial level.
func (g *Game) ClearedLines() int { return g.clearedLines }

// Level returns ClearedLines / 3.
func (g *Game) Level() int { return LevelFor(g.clearedLines) }

// DropInterval returns the number of ticks between gravity steps at the
// current level.
func (g *Game) DropInterval() int { return DropInterval(g.Level()) }

// Ticks returns the frame counter and the tick of the last gravity step.
func (g *Game) Ticks() (game, drop int) { return g.gameTicks, g.dropTicks }

// Move translates the active piece by (dx, dy) with dx in {-1, 0, 1} and dy
// in {0, 1}, and reports whether it moved. A blocked downward move does not
// lock the piece; only gravity does.
func (g *Game) Move(dx, dy int) bool {
	if !g.accept() {
		return false
	}
	if dx < -1 || dx > 1 || dy < 0 || dy > 1 {
		return false
	}
	g.stats.moves++
	if !g.shift(dx, dy) {
		g.stats.movesBlocked++
		return false
	}
	return true
}

// HardDrop moves the active piece straight down until it rests on the floor
// or another block, and returns the number of rows it fell. The piece locks
// on the next gravity step.
func (g *Game) HardDrop() int {
	if !g.accept() {
		return 0
	}
	rows := 0
	for g.shift(0, 1) {
		rows++
	}
	g.stats.hardDrops++
	g.stats.hardDropRows += rows
	return rows
}

// Rotate advances the active piece to its next orientation and reports
// whether it fit. On failure nothing changes.
func (g *Game) Rotate() bool {
	if !g.accept() {
		return false
	}
	g.stats.rotations++
	target := rotated(g.active)
	if !g.board.placeable(g.active.Coords, target) {
		g.stats.rotationsBlocked++
		return false
	}
	g.board.relocate(g.active.Coords, target, g.active.Piece)
	g.active.Coords = target
	g.active.Orientation = (g.active.Orientation + 1) % 4
	return true
}

// TogglePause switches between Playing and Paused and reports whether the
// status changed. It has no effect once the game is over.
func (g *Game) TogglePause() bool {
	if g.status == GameOver {
		g.stats.ignored++
		return false
	}
	return g.transition(eventPauseToggle)
}

// Tick advances the frame counter by one and runs a gravity step when one is
// due. It reports whether gravity ran. The counter keeps running while
// paused, but gravity only runs while playing.
func (g *Game) Tick() bool {
	switch g.status {
	case GameOver:
		g.stats.ignored++
		return false
	case Paused:
		g.gameTicks++
		return false
	}
	g.gameTicks++
	if !g.dropDue() {
		return false
	}
	g.gravity()
	return true
}

func (g *Game) accept() bool {
	if !g.status.accepts() {
		g.stats.ignored++
		return false
	}
	return true
}

// shift moves the active piece if the board allows it.
func (g *Game) shift(dx, dy int) bool {
	if !g.board.movable(g.active.Coords, dx, dy) {
		return false
	}
	target := g.active.Coords.Translate(dx, dy)
	g.board.relocate(g.active.Coords, target, g.active.Piece)
	g.active.Coords = target
	return true
}

// gravity moves the active piece down one row, or locks it when blocked.
func (g *Game) gravity() {
	g.stats.gravitySteps++
	if g.shift(0, 1) {
		return
	}
	g.lock()
}

// lock leaves the active piece where it is, clears complete rows and spawns
// the queued piece.
func (g *Game) lock() {
	g.stats.locks++
	if rows := g.board.ClearLines(); rows > 0 {
		g.clearedLines += rows
		g.stats.clear(rows)
		g.logger.Debug("lines cleared",
			"rows", rows,
			"cleared_lines", g.clearedLines,
			"level", g.Level())
	}
	g.spawnNext()
}

// spawnNext promotes the queued piece to active and queues a fresh one. A
// blocked spawn ends the game without touching the board.
func (g *Game) spawnNext() {
	p := g.next
	g.next = g.draw()
	if g.trySpawn(p) {
		g.logger.Debug("spawn", "piece", p, "next", g.next)
		return
	}
	g.active = ActivePiece{}
	g.transition(eventSpawnBlocked)
	g.logger.Debug("game over",
		"piece", p,
		"cleared_lines", g.clearedLines,
		"ticks", g.gameTicks)
}

// trySpawn checks the spawn cells for p and commits the piece only when all
// of them are empty.
func (g *Game) trySpawn(p Piece) bool {
	target := spawnCoords(p, g.board.Width())
	if !g.board.vacant(target) {
		return false
	}
	g.board.paint(target, p)
	g.active = ActivePiece{Piece: p, Coords: target}
	g.stats.spawn(p)
	return true
}

func (g *Game) draw() Piece {
	p := g.source.Next()
	if !p.Valid() {
		panic(fmt.Sprintf("engine: piece source returned %v", p))
	}
	return p
}

func (g *Game) transition(e event) bool {
	next, ok := g.status.transition(e)
	if !ok {
		return false
	}
	g.logger.Debug("status", "from", g.status, "to", next, "event", e)
	g.status = next
	return true
}

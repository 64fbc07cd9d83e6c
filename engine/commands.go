package engine

import "fmt"

// CommandKind identifies a player or clock command.
type CommandKind uint8

const (
	CommandMove CommandKind = iota
	CommandRotate
	CommandHardDrop
	CommandTogglePause
	CommandTick
)

func (k CommandKind) String() string {
	switch k {
	case CommandMove:
		return "move"
	case CommandRotate:
		return "rotate"
	case CommandHardDrop:
		return "hard-drop"
	case CommandTogglePause:
		return "toggle-pause"
	case CommandTick:
		return "tick"
	}
	return fmt.Sprintf("CommandKind(%d)", uint8(k))
}

// Command is a single engine input. DX and DY are only used by moves.
type Command struct {
	Kind   CommandKind
	DX, DY int
}

func (c Command) String() string {
	if c.Kind == CommandMove {
		return fmt.Sprintf("move(%d,%d)", c.DX, c.DY)
	}
	return c.Kind.String()
}

// Apply runs cmd against the game and reports whether it had an effect.
func (g *Game) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CommandMove:
		return g.Move(cmd.DX, cmd.DY)
	case CommandRotate:
		return g.Rotate()
	case CommandHardDrop:
		return g.HardDrop() > 0
	case CommandTogglePause:
		return g.TogglePause()
	case CommandTick:
		return g.Tick()
	}
	return false
}

// Commands buffers input gathered during a frame so it can be applied to a
// game in one step. A buffer created with WithLog also appends every flushed
// command to a log that Replay can feed back into a fresh game.
type Commands struct {
	pending []Command
	log     []Command
	record  bool
}

// CommandsOption configures a Commands buffer.
type CommandsOption func(*Commands)

// WithLog records every flushed command. The log grows for the life of the
// buffer.
func WithLog() CommandsOption {
	return func(c *Commands) {
		c.record = true
	}
}

// NewCommands returns an empty buffer.
func NewCommands(opts ...CommandsOption) *Commands {
	c := &Commands{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Move queues a translation by (dx, dy).
func (c *Commands) Move(dx, dy int) {
	c.pending = append(c.pending, Command{Kind: CommandMove, DX: dx, DY: dy})
}

// Rotate queues a rotation.
func (c *Commands) Rotate() {
	c.pending = append(c.pending, Command{Kind: CommandRotate})
}

// HardDrop queues a hard drop.
func (c *Commands) HardDrop() {
	c.pending = append(c.pending, Command{Kind: CommandHardDrop})
}

// TogglePause queues a pause toggle.
func (c *Commands) TogglePause() {
	c.pending = append(c.pending, Command{Kind: CommandTogglePause})
}

// Tick queues a frame tick.
func (c *Commands) Tick() {
	c.pending = append(c.pending, Command{Kind: CommandTick})
}

// Push queues an arbitrary command.
func (c *Commands) Push(cmd Command) {
	c.pending = append(c.pending, cmd)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.pending)
}

// Flush applies every queued command to g in order, resetting the buffer
// state, and returns how many had an effect.
func (c *Commands) Flush(g *Game) int {
	applied := 0
	for _, cmd := range c.pending {
		if g.Apply(cmd) {
			applied++
		}
	}
	if c.record {
		c.log = append(c.log, c.pending...)
	}
	c.pending = c.pending[:0]
	return applied
}

// Log returns a copy of every command flushed so far. It is empty unless the
// buffer was created WithLog.
func (c *Commands) Log() []Command {
	return append([]Command(nil), c.log...)
}

// Replay builds a game from cfg and applies log to it. Given the same seed
// (or an equivalent Source) and log, the result is identical to the game
// the log was recorded from.
func Replay(cfg Config, log []Command) (*Game, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for _, cmd := range log {
		g.Apply(cmd)
	}
	return g, nil
}

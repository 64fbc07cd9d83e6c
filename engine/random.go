package engine

import "math/rand/v2"

// PieceSource supplies the identity of each queued piece.
type PieceSource interface {
	Next() Piece
}

// RandomSource draws identities uniformly and independently from all seven
// tetrominoes. There is no bag: repeats are as likely as anything else.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a piece in [LeftL, Square].
func (r *RandomSource) Next() Piece {
	return Piece(1 + r.rng.IntN(PieceCount))
}

// SequenceSource cycles through a fixed list of pieces. Useful for scripted
// games and tests.
type SequenceSource struct {
	pieces []Piece
	pos    int
}

// NewSequenceSource returns a source that yields pieces in order, wrapping
// around at the end. It panics on an empty or invalid list.
func NewSequenceSource(pieces ...Piece) *SequenceSource {
	if len(pieces) == 0 {
		panic("engine: empty piece sequence")
	}
	for _, p := range pieces {
		if !p.Valid() {
			panic("engine: invalid piece in sequence: " + p.String())
		}
	}
	return &SequenceSource{pieces: append([]Piece(nil), pieces...)}
}

func (s *SequenceSource) Next() Piece {
	p := s.pieces[s.pos]
	s.pos = (s.pos + 1) % len(s.pieces)
	return p
}

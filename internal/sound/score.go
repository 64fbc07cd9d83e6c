package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// step holds one note for a number of slots. An empty note is a rest.
type step struct {
	note  string
	slots int
}

// score is a song written as parallel voices of equal length.
type score struct {
	slot   time.Duration
	voices [][]step
}

var scores = [songCount]score{
	Korobeiniki: {
		slot: 125 * time.Millisecond,
		voices: [][]step{{
			{"E2", 4}, {"B1", 2}, {"C2", 2}, {"D2", 2}, {"E2", 1}, {"D2", 1}, {"C2", 2}, {"B1", 2},
			{"A1", 3}, {"", 1}, {"A1", 2}, {"C2", 2}, {"E2", 4}, {"D2", 2}, {"C2", 2}, {"B1", 5},
			{"", 1}, {"C2", 2}, {"D2", 4}, {"E2", 4}, {"C2", 4}, {"A1", 3}, {"", 1}, {"A1", 8}, {"", 2},
			{"D2", 4}, {"F2", 2}, {"A2", 4}, {"G2", 2}, {"F2", 2}, {"E2", 6}, {"C2", 2}, {"E2", 4},
			{"D2", 2}, {"C2", 2}, {"B1", 6}, {"C2", 2}, {"D2", 4}, {"E2", 4}, {"C2", 4}, {"A1", 3},
			{"", 1}, {"A1", 8}, {"E2", 8}, {"C2", 8}, {"D2", 8}, {"B1", 8}, {"C2", 8}, {"A1", 8},
			{"G#1", 8}, {"B1", 8}, {"E2", 8}, {"C2", 8}, {"D2", 8}, {"B1", 8}, {"C2", 4}, {"E2", 4},
			{"A2", 8}, {"G#2", 16},
		}, {
			{"B1", 4}, {"G#1", 2}, {"A1", 2}, {"B1", 4}, {"A1", 2}, {"G#1", 2}, {"E1", 4}, {"E1", 2},
			{"A1", 2}, {"C2", 4}, {"B1", 2}, {"A1", 2}, {"G#1", 4}, {"", 2}, {"E1", 2}, {"G#1", 4},
			{"B1", 2}, {"C2", 2}, {"A1", 4}, {"E1", 3}, {"", 1}, {"E1", 8}, {"", 2}, {"F1", 4},
			{"A1", 2}, {"C2", 4}, {"B1", 2}, {"A1", 2}, {"G1", 6}, {"E1", 2}, {"G1", 2}, {"A1", 1},
			{"G1", 1}, {"F1", 2}, {"E1", 2}, {"G#1", 2}, {"E1", 2}, {"G#1", 2}, {"E1", 2}, {"B1", 4},
			{"C2", 2}, {"B1", 2}, {"A1", 4}, {"E1", 12}, {"C2", 8}, {"A1", 8}, {"B1", 8}, {"G#1", 8},
			{"A1", 8}, {"E1", 8}, {"E1", 8}, {"G#1", 8}, {"C2", 8}, {"A1", 8}, {"B1", 8}, {"G#1", 8},
			{"A1", 4}, {"C2", 4}, {"E2", 8}, {"E2", 16},
		}},
	},
	Menuet: {
		slot: 150 * time.Millisecond,
		voices: [][]step{{
			{"D2", 4}, {"C#2", 2}, {"B1", 2}, {"F#1", 2}, {"B1", 2}, {"C#2", 2}, {"D2", 2}, {"E2", 2},
			{"D2", 4}, {"C#2", 2}, {"B1", 2}, {"D2", 2}, {"F#2", 2}, {"E2", 2}, {"D2", 2}, {"C#2", 2},
			{"D2", 2}, {"B1", 2}, {"C#2", 2}, {"A#1", 6}, {"B1", 2}, {"D2", 2}, {"C#2", 2},
			{"B1", 4}, {"A#1", 2}, {"B1", 6},
		}, {
			{"B0", 6}, {"D1", 6}, {"E1", 6}, {"F#1", 6}, {"B0", 6}, {"G1", 6},
			{"E1", 6}, {"F#1", 6}, {"G1", 6}, {"F#1", 6}, {"B0", 6},
		}},
	},
	RussianSong: {
		slot: 140 * time.Millisecond,
		voices: [][]step{{
			{"A1", 2}, {"B1", 2}, {"C2", 2}, {"A1", 2}, {"E2", 4}, {"E2", 4},
			{"D2", 2}, {"C2", 2}, {"B1", 2}, {"A1", 2}, {"B1", 4}, {"E1", 4},
			{"A1", 2}, {"B1", 2}, {"C2", 2}, {"D2", 2}, {"E2", 4}, {"A2", 4},
			{"G2", 2}, {"F2", 2}, {"E2", 2}, {"D2", 2}, {"E2", 6}, {"", 2},
			{"F2", 2}, {"E2", 2}, {"D2", 2}, {"C2", 2}, {"B1", 4}, {"E2", 4},
			{"D2", 2}, {"C2", 2}, {"B1", 2}, {"G#1", 2}, {"A1", 6}, {"", 2},
		}},
	},
}

// semitones maps a note letter to its offset from C.
var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// noteFrequency converts a name such as "G#1" to hertz. Octave 1 starts at
// middle C, so "A1" is 440 Hz.
func noteFrequency(name string) (float64, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("sound: bad note %q", name)
	}
	semi, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("sound: bad note %q", name)
	}
	rest := name[1:]
	if rest[0] == '#' {
		semi++
		rest = rest[1:]
	}
	var octave int
	if _, err := fmt.Sscanf(rest, "%d", &octave); err != nil {
		return 0, fmt.Errorf("sound: bad octave in note %q", name)
	}
	n := (octave-1)*12 + semi
	return 440 * math.Pow(2, float64(n-9)/12), nil
}

// slots returns the length of the score in slots.
func (sc score) slots() int {
	if len(sc.voices) == 0 {
		return 0
	}
	total := 0
	for _, st := range sc.voices[0] {
		total += st.slots
	}
	return total
}

// streamer renders the score once through, mixing the voices at equal
// volume.
func (sc score) streamer(sr beep.SampleRate) (beep.Streamer, error) {
	slotN := sr.N(sc.slot)
	voices := make([]beep.Streamer, 0, len(sc.voices))
	for _, v := range sc.voices {
		parts := make([]beep.Streamer, 0, len(v))
		for _, st := range v {
			n := st.slots * slotN
			if st.note == "" {
				parts = append(parts, generators.Silence(n))
				continue
			}
			f, err := noteFrequency(st.note)
			if err != nil {
				return nil, err
			}
			tone, err := generators.SineTone(sr, f)
			if err != nil {
				return nil, err
			}
			parts = append(parts, beep.Take(n, tone))
		}
		voices = append(voices, beep.Seq(parts...))
	}
	return &effects.Gain{
		Streamer: beep.Mix(voices...),
		Gain:     1/float64(len(voices)) - 1,
	}, nil
}

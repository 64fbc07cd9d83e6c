package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledPlayerIsSilent(t *testing.T) {
	p, err := New(false)
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	// Must not touch the speaker.
	p.LineClear(4)
	p.GameOver()

	var nilPlayer *Player
	assert.False(t, nilPlayer.Enabled())
	nilPlayer.LineClear(1)
}

func TestLineClearNotes(t *testing.T) {
	notes := lineClearNotes(3)
	require.Len(t, notes, 3)
	assert.InDelta(t, 440.0, notes[0], 1e-9)
	assert.InDelta(t, 550.0, notes[1], 1e-9)
	assert.InDelta(t, 687.5, notes[2], 1e-9)
	assert.Empty(t, lineClearNotes(0))
}

func TestDisabledPlayerIgnoresMusic(t *testing.T) {
	p, err := New(false)
	require.NoError(t, err)
	assert.NoError(t, p.PlaySong(Korobeiniki))
	p.StopMusic()

	var nilPlayer *Player
	assert.NoError(t, nilPlayer.PlaySong(Menuet))
}

func TestNoteFrequency(t *testing.T) {
	tests := []struct {
		note string
		want float64
	}{
		{"A1", 440},
		{"A2", 880},
		{"C1", 261.6256},
		{"G#1", 415.3047},
		{"E2", 659.2551},
		{"B0", 246.9417},
	}
	for _, tt := range tests {
		got, err := noteFrequency(tt.note)
		require.NoError(t, err, tt.note)
		assert.InDelta(t, tt.want, got, 1e-3, tt.note)
	}

	for _, bad := range []string{"", "H1", "A", "A#x"} {
		_, err := noteFrequency(bad)
		assert.Error(t, err, bad)
	}
}

func TestScoresAreWellFormed(t *testing.T) {
	for _, s := range Songs() {
		t.Run(s.String(), func(t *testing.T) {
			sc := scores[s]
			require.NotEmpty(t, sc.voices)
			want := sc.slots()
			assert.Positive(t, want)
			for i, v := range sc.voices {
				total := 0
				for _, st := range v {
					assert.Positive(t, st.slots)
					if st.note != "" {
						_, err := noteFrequency(st.note)
						assert.NoError(t, err, st.note)
					}
					total += st.slots
				}
				assert.Equal(t, want, total, "voice %d", i)
			}
		})
	}
	assert.Equal(t, 256, scores[Korobeiniki].slots())
}

func TestScoreStreamerLength(t *testing.T) {
	sc := scores[RussianSong]
	st, err := sc.streamer(sampleRate)
	require.NoError(t, err)

	samples := make([][2]float64, 4096)
	total := 0
	for {
		n, ok := st.Stream(samples)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	assert.Equal(t, sc.slots()*sampleRate.N(sc.slot), total)
}

func TestSongString(t *testing.T) {
	assert.Equal(t, "Korobeiniki", Korobeiniki.String())
	assert.Equal(t, "Song(9)", Song(9).String())
	assert.Len(t, Songs(), int(songCount))
}

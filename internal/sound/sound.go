// Package sound plays the looping background songs and short cue tones for
// game events. Everything is synthesized from sine tones, so no audio assets
// ship with the game.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

const (
	noteLength     = 60 * time.Millisecond
	gameOverLength = 400 * time.Millisecond
	baseFrequency  = 440.0
	gameOverFreq   = 110.0
)

// Song selects a background tune.
type Song int

const (
	Korobeiniki Song = iota
	Menuet
	RussianSong

	songCount
)

// StartSong is the tune that plays when a game starts.
const StartSong = Menuet

// Songs returns every song in key order: F1, F2, F3.
func Songs() []Song {
	return []Song{Korobeiniki, Menuet, RussianSong}
}

func (s Song) String() string {
	switch s {
	case Korobeiniki:
		return "Korobeiniki"
	case Menuet:
		return "BWV 814 Menuet"
	case RussianSong:
		return "Russian song"
	}
	return fmt.Sprintf("Song(%d)", int(s))
}

// Player emits music and cues through the system speaker. The zero value is
// a silent player. A Player is used from the front end's update loop only.
type Player struct {
	enabled bool
	music   *beep.Ctrl
	songs   map[Song]*beep.Buffer
}

// New initializes the speaker. When enabled is false, or the speaker cannot
// be opened, the returned player is silent; the error is still reported so
// callers can log it.
func New(enabled bool) (*Player, error) {
	if !enabled {
		return &Player{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true, songs: make(map[Song]*beep.Buffer)}, nil
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// PlaySong replaces the current background song with s, looping forever.
func (p *Player) PlaySong(s Song) error {
	if !p.Enabled() {
		return nil
	}
	buf, err := p.buffer(s)
	if err != nil {
		return err
	}
	p.StopMusic()
	p.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	speaker.Play(p.music)
	return nil
}

// StopMusic silences the background song.
func (p *Player) StopMusic() {
	if !p.Enabled() || p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// buffer renders s once and caches the samples.
func (p *Player) buffer(s Song) (*beep.Buffer, error) {
	if buf, ok := p.songs[s]; ok {
		return buf, nil
	}
	if s < 0 || s >= songCount {
		return nil, fmt.Errorf("sound: unknown song %d", int(s))
	}
	st, err := scores[s].streamer(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("sound: rendering %v: %w", s, err)
	}
	buf := beep.NewBuffer(format)
	buf.Append(st)
	p.songs[s] = buf
	return buf, nil
}

// LineClear plays a rising arpeggio with one note per cleared row.
func (p *Player) LineClear(rows int) {
	if !p.Enabled() || rows <= 0 {
		return
	}
	p.play(lineClearNotes(rows), noteLength)
}

// GameOver stops the music and plays a low tone.
func (p *Player) GameOver() {
	if !p.Enabled() {
		return
	}
	p.StopMusic()
	p.play([]float64{gameOverFreq}, gameOverLength)
}

func (p *Player) play(freqs []float64, length time.Duration) {
	streamers := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return
		}
		streamers = append(streamers, beep.Take(sampleRate.N(length), tone))
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(streamers...),
		Base:     2,
		Volume:   -2,
	})
}

// lineClearNotes returns major-third steps starting at A4.
func lineClearNotes(rows int) []float64 {
	notes := make([]float64, rows)
	f := baseFrequency
	for i := range notes {
		notes[i] = f
		f *= 1.25
	}
	return notes
}

package player

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/SupremaLex/MIDI-lib/pkg/fileutil"
	"github.com/SupremaLex/MIDI-lib/pkg/smf"
)

// SampleRate is the audio sample rate used for synthesis.
const SampleRate = 44100

// ErrNoSoundFont is returned when no SoundFont file is provided.
var ErrNoSoundFont = errors.New("SoundFont file is required for audio playback")

// ErrSoundFontNotFound is returned when the SoundFont file cannot be found.
var ErrSoundFontNotFound = errors.New("SoundFont file not found")

// Player synthesizes SMF files with go-meltysynth and plays the result
// through oto.
type Player struct {
	soundFont *meltysynth.SoundFont
	synth     *meltysynth.Synthesizer

	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error

	mu sync.Mutex
}

// NewPlayer loads the SoundFont at soundFontPath and prepares a
// synthesizer for it.
func NewPlayer(soundFontPath string) (*Player, error) {
	if soundFontPath == "" {
		return nil, ErrNoSoundFont
	}

	actualPath, err := fileutil.ResolvePath(soundFontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSoundFontNotFound, soundFontPath)
	}

	sf2Data, err := os.ReadFile(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SoundFont file: %w", err)
	}

	soundFont, err := meltysynth.NewSoundFont(bytes.NewReader(sf2Data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SoundFont: %w", err)
	}

	settings := meltysynth.NewSynthesizerSettings(SampleRate)
	synth, err := meltysynth.NewSynthesizer(soundFont, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesizer: %w", err)
	}

	return &Player{soundFont: soundFont, synth: synth}, nil
}

// sequence parses the serialized file into a running meltysynth
// sequencer and returns it with the total sample count of the piece.
func (p *Player) sequence(f *smf.File) (*meltysynth.MidiFileSequencer, int64, error) {
	midi, err := meltysynth.NewMidiFile(bytes.NewReader(f.Serialize()))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load MIDI data: %w", err)
	}
	seq := meltysynth.NewMidiFileSequencer(p.synth)
	seq.Play(midi, false)
	total := int64(midi.GetLength().Seconds() * SampleRate)
	return seq, total, nil
}

// Render synthesizes f to stereo float32 PCM at SampleRate.
func (p *Player) Render(f *smf.File) (left, right []float32, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	seq, total, err := p.sequence(f)
	if err != nil {
		return nil, nil, err
	}
	left = make([]float32, total)
	right = make([]float32, total)
	seq.Render(left, right)
	return left, right, nil
}

// Play synthesizes f and blocks until the audio device has played it
// to the end.
func (p *Player) Play(f *smf.File) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	seq, total, err := p.sequence(f)
	if err != nil {
		return err
	}

	p.otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			p.otoErr = err
			return
		}
		<-ready
		p.otoCtx = ctx
	})
	if p.otoErr != nil {
		return fmt.Errorf("failed to open audio device: %w", p.otoErr)
	}

	otoPlayer := p.otoCtx.NewPlayer(&pcmStream{seq: seq, total: total})
	otoPlayer.Play()
	for otoPlayer.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return otoPlayer.Close()
}

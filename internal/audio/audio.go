package audio

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"

	"github.com/diegok/pingpong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// initSpeaker opens the audio device; tests replace it.
var initSpeaker = speaker.Init

// Player plays the game's sound cues through the speaker. Every cue is
// fire-and-forget; a player that failed to initialize stays silent.
type Player struct {
	logger      *log.Logger
	muted       bool
	attempted   bool
	initialized bool
}

func NewPlayer(logger *log.Logger, muted bool) *Player {
	return &Player{logger: logger, muted: muted}
}

// Init opens the speaker. Only the first call does any work. A failure is
// logged as a warning and returned; the game keeps running without sound.
func (p *Player) Init() error {
	if p.attempted || p.muted {
		return nil
	}
	p.attempted = true

	if err := initSpeaker(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		err = errors.Wrap(err, "init speaker")
		p.logger.Printf("warning: audio disabled: %v", err)
		return err
	}

	p.initialized = true
	return nil
}

// Close shuts down the audio system
func (p *Player) Close() {
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// Enabled reports whether cues are audible
func (p *Player) Enabled() bool {
	return p.initialized
}

// Handle plays the cue for a simulation event
func (p *Player) Handle(ev game.Event) {
	switch ev {
	case game.EventPaddleHit:
		p.PaddleHit()
	case game.EventWallBounce:
		p.WallBounce()
	case game.EventScore:
		p.Score()
	case game.EventStart:
		p.Start()
	case game.EventGameOver:
		p.GameOver()
	}
}

// PaddleHit plays the sound for ball hitting a paddle
func (p *Player) PaddleHit() {
	p.play(paddleHitCue())
}

// WallBounce plays the sound for ball hitting top/bottom wall
func (p *Player) WallBounce() {
	p.play(wallBounceCue())
}

// Score plays the sound when a player scores
func (p *Player) Score() {
	p.play(scoreCue())
}

// Start plays the sound when play begins
func (p *Player) Start() {
	p.play(startCue())
}

// GameOver plays the sound when the match ends
func (p *Player) GameOver() {
	p.play(gameOverCue())
}

func (p *Player) play(s beep.Streamer) {
	if !p.initialized {
		return
	}
	speaker.Play(s)
}

func paddleHitCue() beep.Streamer {
	return squareWave(800, 60*time.Millisecond)
}

func wallBounceCue() beep.Streamer {
	return squareWave(440, 30*time.Millisecond)
}

func scoreCue() beep.Streamer {
	return beep.Seq(
		squareWave(523, 100*time.Millisecond),
		squareWave(659, 100*time.Millisecond),
		squareWave(784, 150*time.Millisecond),
	)
}

func startCue() beep.Streamer {
	return beep.Seq(
		squareWave(100, 80*time.Millisecond),
		squareWave(200, 80*time.Millisecond),
	)
}

func gameOverCue() beep.Streamer {
	return beep.Seq(
		squareWave(300, 150*time.Millisecond),
		squareWave(225, 150*time.Millisecond),
		squareWave(150, 300*time.Millisecond),
	)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// Package audio plays short tones for game events.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"torus-snake/game"
)

const sampleRate = beep.SampleRate(44100)

const (
	eatFrequency      = 880
	gameOverFrequency = 220
)

// Player plays a tone. Speaker is the real implementation.
type Player interface {
	Play(freq float64, d time.Duration)
}

// Speaker plays sine tones through the system audio device.
type Speaker struct{}

// NewSpeaker opens the audio device. Callers should treat an error as
// "play without sound".
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

func (s *Speaker) Play(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *Speaker) Close() {
	speaker.Close()
}

// Chime is a render sink that beeps when the snake grows and when it dies.
type Chime struct {
	player Player
	size   int
}

func NewChime(player Player) *Chime {
	return &Chime{player: player}
}

func (c *Chime) OnReset(size int, snap game.Snapshot) {
	c.size = len(snap.Body)
}

func (c *Chime) OnUpdate(snap game.Snapshot, size int) {
	if size > c.size {
		c.player.Play(eatFrequency, 50*time.Millisecond)
	}
	c.size = size
}

func (c *Chime) OnGameOver() {
	c.player.Play(gameOverFrequency, 300*time.Millisecond)
}

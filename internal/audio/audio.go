// Package audio plays synthesized sound cues in response to simulation
// events. Audio is optional: every operation is a no-op until Initialize
// succeeds.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices bounds how many cues may overlap; extra cues are dropped.
const maxVoices = 16

// SoundManager mixes cues onto the speaker. It implements game.Listener.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized, silent manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. A second call is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences every playing cue.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without closing the device.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts c on top of whatever is already playing.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(c.Stream(sampleRate))
	}
	speaker.Unlock()
}

// OnEvent maps a simulation event to its cue.
func (sm *SoundManager) OnEvent(ev game.Event) {
	if c, ok := CueFor(ev.Type); ok {
		sm.Play(c)
	}
}

// Attach subscribes the manager to every event of d.
func (sm *SoundManager) Attach(d *game.Dispatcher) {
	d.SubscribeAll(sm)
}

// CueFor returns the cue played for an event type.
func CueFor(t game.EventType) (Cue, bool) {
	switch t {
	case game.ShotFired:
		return cueShot, true
	case game.EnemyKilled:
		return cueKill, true
	case game.BossSpawned:
		return cueBossIn, true
	case game.BossKilled:
		return cueBossDown, true
	case game.LevelStarted:
		return cueLevel, true
	case game.CoinsCollected:
		return cuePickup, true
	case game.PlayerHit:
		return cueHit, true
	case game.PlayerDodged:
		return cueDodge, true
	case game.PurchaseMade:
		return cueBuy, true
	case game.RunEnded:
		return cueGameOver, true
	}
	return Cue{}, false
}

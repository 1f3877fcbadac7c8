package audio

import (
	"math"
	"testing"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

func drain(s interface {
	Stream([][2]float64) (int, bool)
}) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestCue_StreamLengthAndRange(t *testing.T) {
	for _, c := range []Cue{cueShot, cueHit, cueBossIn, cueGameOver} {
		samples := drain(c.Stream(sampleRate))
		if want := sampleRate.N(c.Duration); len(samples) != want {
			t.Fatalf("%s: %d samples, want %d", c.Name, len(samples), want)
		}
		peak := 0.0
		for _, s := range samples {
			if s[0] != s[1] {
				t.Fatalf("%s: channels differ", c.Name)
			}
			peak = math.Max(peak, math.Abs(s[0]))
		}
		if peak == 0 || peak > c.Gain+1e-9 {
			t.Fatalf("%s: peak %.4f outside (0, %.2f]", c.Name, peak, c.Gain)
		}
	}
}

func TestCue_Deterministic(t *testing.T) {
	a := drain(cueHit.Stream(sampleRate))
	b := drain(cueHit.Stream(sampleRate))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestCueFor_CoversEveryEvent(t *testing.T) {
	types := []game.EventType{
		game.ShotFired, game.EnemyKilled, game.BossSpawned, game.BossKilled, game.LevelStarted,
		game.PlayerHit, game.PlayerDodged, game.CoinsCollected, game.PurchaseMade, game.RunEnded,
	}
	seen := map[string]bool{}
	for _, et := range types {
		c, ok := CueFor(et)
		if !ok {
			t.Fatalf("no cue for %s", et)
		}
		seen[c.Name] = true
	}
	if len(seen) != len(types) {
		t.Fatalf("cues should be distinct, got %d for %d events", len(seen), len(types))
	}
	if _, ok := CueFor(game.EventType("nope")); ok {
		t.Fatal("unknown event should have no cue")
	}
}

func TestSoundManager_SilentWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized manager panicked: %v", r)
		}
	}()
	sm := NewSoundManager()
	d := game.NewDispatcher()
	sm.Attach(d)
	d.Dispatch(game.Event{Type: game.BossKilled})
	sm.Play(cueKill)
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Fatal("mute flag not kept")
	}
	sm.Close()
}

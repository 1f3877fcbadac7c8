// Command arena-tui plays the arena in a terminal. Movement keys steer the
// player while aim follows the nearest enemy; Tab hands control to the
// autopilot.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Arena-Shooter/internal/game"
	"github.com/Garsondee/Arena-Shooter/internal/save"
)

func main() {
	var tuningPath string
	var savePath string
	var seed int64
	var autopilot bool

	flag.StringVar(&tuningPath, "tuning", "", "YAML balance file (defaults when empty)")
	flag.StringVar(&savePath, "save", save.DefaultPath, "save file path (empty disables saving)")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (time based when 0)")
	flag.BoolVar(&autopilot, "autopilot", false, "start under autopilot control")
	flag.Parse()

	tun := game.DefaultTuning()
	if tuningPath != "" {
		var err error
		if tun, err = game.LoadTuning(tuningPath); err != nil {
			log.Fatal(err)
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	run := game.NewRun(tun, game.NewRand(seed))
	if savePath != "" {
		snap, err := save.Load(savePath, tun)
		if err != nil && !errors.Is(err, save.ErrNoSave) {
			log.Printf("save ignored: %v", err)
		}
		run.ApplySnapshot(snap)
	}
	a := newApp(run, autopilot)

	if savePath != "" {
		cp := &save.Checkpointer{
			Path:     savePath,
			Snapshot: func() game.Snapshot { return a.run.Snapshot() },
		}
		cp.Attach(run.Events)
	}

	if err := play(a, tun.TickRate); err != nil {
		log.Fatal(err)
	}

	if savePath != "" {
		if err := save.Store(savePath, a.run.Snapshot()); err != nil {
			log.Printf("final save failed: %v", err)
		}
	}
	fmt.Printf("final score %d, level %d\n", a.run.Score, a.run.Spawner.Level)
}

// play owns the terminal until the player quits. Input is polled on its own
// goroutine and applied between frames, so the run is only touched here.
func play(a *app, tickRate int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(screen.PollEvent, events, done)

	frameDur := time.Second / time.Duration(max(tickRate, 1))
	ticker := time.NewTicker(frameDur)
	defer ticker.Stop()

	w, h := screen.Size()
	f := newFrame(w, h)
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.key(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				w, h = screen.Size()
				f = newFrame(w, h)
				screen.Sync()
			}
		case now := <-ticker.C:
			a.advance(now.Sub(last).Seconds())
			last = now
			drawRun(f, a.run, a.ctl.autopilot)
			if a.statusLeft > 0 {
				f.text(1, 0, " "+a.status+" ", styleBanner)
			}
			f.blit(screen)
			screen.Show()
		}
	}
}

// forwardEvents feeds polled events to out until poll returns nil or done is
// closed. out is closed on exit.
func forwardEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

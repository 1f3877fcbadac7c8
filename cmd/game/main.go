package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Arena-Shooter/internal/audio"
	"github.com/Garsondee/Arena-Shooter/internal/frontend"
	"github.com/Garsondee/Arena-Shooter/internal/game"
	"github.com/Garsondee/Arena-Shooter/internal/save"
)

func main() {
	var tuningPath string
	var savePath string
	var seed int64
	var mute bool

	flag.StringVar(&tuningPath, "tuning", "", "YAML balance file (defaults when empty)")
	flag.StringVar(&savePath, "save", save.DefaultPath, "save file path")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (time based when 0)")
	flag.BoolVar(&mute, "mute", false, "start with sound off")
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

	snap, err := save.Load(savePath, tun)
	switch {
	case errors.Is(err, save.ErrNoSave):
		log.Printf("no save at %s, starting a fresh profile", savePath)
	case err != nil:
		log.Printf("save ignored: %v", err)
	}

	run := game.NewRun(tun, game.NewRand(seed))
	run.ApplySnapshot(snap)
	g := frontend.New(run)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Close()
	sound.SetMuted(mute)
	sound.Attach(run.Events)

	cp := &save.Checkpointer{
		Path:     savePath,
		Snapshot: func() game.Snapshot { return g.Run().Snapshot() },
	}
	cp.Attach(run.Events)

	ebiten.SetTPS(tun.TickRate)
	ebiten.SetWindowTitle("Arena Shooter")
	ebiten.SetWindowSize(g.Size())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if err := save.Store(savePath, g.Run().Snapshot()); err != nil {
		log.Printf("final save failed: %v", err)
	}
}

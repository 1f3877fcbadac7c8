// Package save persists the player profile between sessions as a JSON file.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

// DefaultPath is the save file used when no -save flag is given.
const DefaultPath = "save.json"

// ErrNoSave is returned by Load when the save file does not exist.
var ErrNoSave = errors.New("no save file")

// Load reads the profile at path. Fields absent from the file keep their
// baseline value. A missing file yields the baseline profile and ErrNoSave;
// a malformed one yields the baseline profile and the decode error.
func Load(path string, tun game.Tuning) (game.Snapshot, error) {
	snap := game.DefaultSnapshot(tun)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return snap, fmt.Errorf("load %s: %w", path, ErrNoSave)
	}
	if err != nil {
		return snap, fmt.Errorf("load %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.DefaultSnapshot(tun), fmt.Errorf("decode %s: %w", path, err)
	}
	snap.Normalize(tun)
	return snap, nil
}

// Store writes snap to path atomically: a temp file in the same directory is
// written, synced and renamed over the target.
func Store(path string, snap game.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("store %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("store %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("store %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store %s: %w", path, err)
	}
	return nil
}

// Checkpointer stores the current profile whenever a checkpoint event is
// dispatched: coin pickups, purchases, level changes and the end of a run.
type Checkpointer struct {
	Path     string
	Snapshot func() game.Snapshot // reads the live run

	Saves    int
	Failures int
}

// Attach subscribes the checkpointer to the checkpoint events of d.
func (c *Checkpointer) Attach(d *game.Dispatcher) {
	for _, t := range []game.EventType{game.CoinsCollected, game.PurchaseMade, game.LevelStarted, game.RunEnded} {
		d.Subscribe(t, c)
	}
}

func (c *Checkpointer) OnEvent(ev game.Event) {
	if err := Store(c.Path, c.Snapshot()); err != nil {
		c.Failures++
		log.Printf("save: checkpoint on %s failed: %v", ev.Type, err)
		return
	}
	c.Saves++
}

package frontend

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

const adminPassword = "qweasd"

// AdminPanel is the password-gated cheat panel. Once unlocked, digit
// hotkeys call the same run operations as the console.
type AdminPanel struct {
	Open          bool
	Authenticated bool
	Input         string

	password string
	copyText func(string) error
}

// NewAdminPanel creates a locked, closed panel that copies to the system
// clipboard.
func NewAdminPanel() *AdminPanel {
	return &AdminPanel{password: adminPassword, copyText: clipboard.WriteAll}
}

// Show opens the panel locked.
func (a *AdminPanel) Show() {
	a.Open = true
	a.Authenticated = false
	a.Input = ""
}

// Hide closes the panel and forgets the unlock.
func (a *AdminPanel) Hide() {
	a.Open = false
	a.Authenticated = false
	a.Input = ""
}

func (a *AdminPanel) Type(rs []rune) {
	for _, ch := range rs {
		if len(a.Input) < len(a.password)+8 {
			a.Input += string(ch)
		}
	}
}

func (a *AdminPanel) Backspace() {
	if rs := []rune(a.Input); len(rs) > 0 {
		a.Input = string(rs[:len(rs)-1])
	}
}

// Submit checks the typed password. The input is cleared either way.
func (a *AdminPanel) Submit() bool {
	a.Authenticated = a.Input == a.password
	a.Input = ""
	return a.Authenticated
}

// adminActions labels the unlocked hotkeys, in key order starting at 1.
var adminActions = []string{
	"toggle god mode",
	"+1000 coins",
	"+10 levels",
	"kill all enemies",
	"full heal",
	"+10 armor",
	"list console commands",
	"copy save snapshot",
}

// Action runs hotkey n (1-based) and returns a status line. Locked panels
// do nothing.
func (a *AdminPanel) Action(r *game.Run, h *History, n int) string {
	if !a.Authenticated || n < 1 || n > len(adminActions) {
		return ""
	}
	var msg string
	switch n {
	case 1:
		msg = Execute(r, "god")
	case 2:
		msg = Execute(r, "money")
	case 3:
		msg = Execute(r, "level")
	case 4:
		msg = Execute(r, "killall")
	case 5:
		msg = Execute(r, "heal")
	case 6:
		msg = Execute(r, "armor")
	case 7:
		for _, line := range HelpLines() {
			h.Add(r.Tick, "admin", line)
		}
		return "commands listed in the console"
	case 8:
		msg = a.copySnapshot(r)
	}
	h.Add(r.Tick, "admin", msg)
	return msg
}

func (a *AdminPanel) copySnapshot(r *game.Run) string {
	data, err := json.MarshalIndent(r.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Sprintf("encode snapshot: %v", err)
	}
	if err := a.copyText(string(data)); err != nil {
		return fmt.Sprintf("clipboard unavailable: %v", err)
	}
	return fmt.Sprintf("snapshot copied (%d bytes)", len(data))
}

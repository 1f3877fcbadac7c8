package frontend

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

const consoleMaxInput = 64

// Defaults used when a console command is given without an amount.
const (
	defaultMoney      = 1000
	defaultLevelJump  = 10
	defaultSpawnCount = 5
	defaultArmor      = 10
)

type consoleCommand struct {
	usage string
	// run executes the command. arg is the parsed amount, or -1 when absent.
	run func(r *game.Run, arg int) string
}

var consoleCommands = map[string]consoleCommand{
	"god": {"god", func(r *game.Run, _ int) string {
		if r.ToggleGodMode() {
			return "god mode on"
		}
		return "god mode off"
	}},
	"money": {"money [n]", func(r *game.Run, n int) string {
		if n < 0 {
			n = defaultMoney
		}
		r.AddCurrency(n)
		return fmt.Sprintf("added %d coins", n)
	}},
	"level": {"level [n]", func(r *game.Run, n int) string {
		if n < 0 {
			n = r.Spawner.Level + defaultLevelJump
		}
		r.SetLevel(n)
		return fmt.Sprintf("level is now %d", r.Spawner.Level)
	}},
	"killall": {"killall", func(r *game.Run, _ int) string {
		return fmt.Sprintf("removed %d enemies", r.ClearEnemies())
	}},
	"spawn": {"spawn [n]", func(r *game.Run, n int) string {
		if n < 0 {
			n = defaultSpawnCount
		}
		r.SpawnEnemies(n)
		return fmt.Sprintf("spawned %d enemies", n)
	}},
	"heal": {"heal", func(r *game.Run, _ int) string {
		r.HealFull()
		return "health restored"
	}},
	"armor": {"armor [n]", func(r *game.Run, n int) string {
		if n < 0 {
			n = defaultArmor
		}
		r.AddArmor(n)
		return fmt.Sprintf("added %d armor", n)
	}},
}

// commandOrder is the order commands are listed by help.
var commandOrder = []string{"help", "god", "money", "level", "killall", "spawn", "heal", "armor"}

// HelpLines lists every console command with its usage.
func HelpLines() []string {
	out := []string{"help"}
	for _, name := range commandOrder[1:] {
		out = append(out, consoleCommands[name].usage)
	}
	return out
}

// Execute parses and runs one console line against r, returning the reply.
func Execute(r *game.Run, line string) string {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ""
	}
	name := fields[0]
	if name == "help" {
		return "commands: " + strings.Join(HelpLines(), ", ")
	}
	cmd, ok := consoleCommands[name]
	if !ok {
		return fmt.Sprintf("unknown command: %s", name)
	}
	arg := -1
	switch len(fields) {
	case 1:
	case 2:
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return fmt.Sprintf("%s: bad amount %q", name, fields[1])
		}
		if !strings.Contains(cmd.usage, "[n]") {
			return fmt.Sprintf("usage: %s", cmd.usage)
		}
		arg = n
	default:
		return fmt.Sprintf("usage: %s", cmd.usage)
	}
	return cmd.run(r, arg)
}

// Console is the text command overlay.
type Console struct {
	Open    bool
	Input   string
	History *History
}

func NewConsole(h *History) *Console {
	return &Console{History: h}
}

// Toggle opens or closes the console, clearing any half-typed line.
func (c *Console) Toggle() {
	c.Open = !c.Open
	c.Input = ""
}

// Type appends printable characters to the input line.
func (c *Console) Type(rs []rune) {
	for _, ch := range rs {
		if len(c.Input) >= consoleMaxInput {
			return
		}
		if unicode.IsPrint(ch) {
			c.Input += string(ch)
		}
	}
}

func (c *Console) Backspace() {
	if rs := []rune(c.Input); len(rs) > 0 {
		c.Input = string(rs[:len(rs)-1])
	}
}

// Submit runs the input line and records it with its reply.
func (c *Console) Submit(r *game.Run) string {
	line := strings.TrimSpace(c.Input)
	c.Input = ""
	if line == "" {
		return ""
	}
	reply := Execute(r, line)
	c.History.Add(r.Tick, "console", "> "+line)
	c.History.Add(r.Tick, "console", reply)
	return reply
}

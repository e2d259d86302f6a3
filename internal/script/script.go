// Package script replays recorded input steps through an input builder.
package script

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/pelletier/go-toml"
)

// Step holds the same input for a number of logic ticks. Actions in Tap are tapped on the
// first tick of the step, actions in Hold stay down for the whole step.
type Step struct {
	Ticks int
	MoveX float32
	MoveY float32
	// Look is the yaw in degrees turned on the first tick of the step.
	Look float32
	Hold []string
	Tap  []string
}

// Script is a list of steps.
type Script struct {
	Name  string
	Steps []Step `toml:"Step"`
}

// Default is a script running through every movement ability over the tool arena.
func Default() Script {
	return Script{
		Name: "tour",
		Steps: []Step{
			{Ticks: 10},
			{Ticks: 30, MoveY: 0.4},
			{Ticks: 40, MoveY: 1, Hold: []string{"sprint"}},
			{Ticks: 1, MoveY: 1, Hold: []string{"sprint"}, Tap: []string{"crouch"}},
			{Ticks: 30, MoveY: 1, Hold: []string{"sprint"}},
			{Ticks: 1, MoveY: 1, Tap: []string{"jump"}},
			{Ticks: 8, MoveY: 1},
			{Ticks: 1, MoveY: 1, Tap: []string{"jump"}},
			{Ticks: 40, MoveY: 1},
			{Ticks: 20, Hold: []string{"crouch"}},
			{Ticks: 10},
			{Ticks: 1, Hold: []string{"aim"}},
			{Ticks: 10, Hold: []string{"aim"}},
			{Ticks: 1, Hold: []string{"aim"}, Tap: []string{"execute"}},
			{Ticks: 20},
			{Ticks: 1, Look: 90},
			{Ticks: 1, MoveY: 1, Tap: []string{"execute"}},
			{Ticks: 30, MoveY: 1},
			{Ticks: 20},
		},
	}
}

// Load decodes a TOML script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("error reading script: %w", err)
	}
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return Script{}, oerror.Wrap(oerror.ErrInvalidConfig, "error decoding script: %v", err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, s.Validate()
}

// Validate returns an error for unknown action names or empty steps.
func (s Script) Validate() error {
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return oerror.Wrap(oerror.ErrInvalidConfig, "step %d has no ticks", i)
		}
		for _, a := range append(append([]string(nil), st.Hold...), st.Tap...) {
			if _, ok := input.ParseAction(a); !ok {
				return oerror.Wrap(oerror.ErrInvalidConfig, "step %d: unknown action %q", i, a)
			}
		}
	}
	return nil
}

// Ticks returns the length of the script in logic ticks.
func (s Script) Ticks() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// Player produces the input snapshot of every tick of a script.
type Player struct {
	s       Script
	b       *input.Builder
	step    int
	tick    int
	started bool
}

// NewPlayer returns a player at the start of s.
func NewPlayer(s Script) *Player {
	return &Player{s: s, b: input.NewBuilder()}
}

// Next returns the snapshot of the next tick. ok is false once the script ended.
func (p *Player) Next() (snap input.Snapshot, ok bool) {
	for p.step < len(p.s.Steps) && p.tick >= p.s.Steps[p.step].Ticks {
		p.step, p.tick, p.started = p.step+1, 0, false
	}
	if p.step >= len(p.s.Steps) {
		return input.Snapshot{}, false
	}
	st := p.s.Steps[p.step]
	p.tick++

	held := make(map[input.Action]bool, len(st.Hold))
	for _, name := range st.Hold {
		a, _ := input.ParseAction(name)
		held[a] = true
	}
	for _, a := range []input.Action{input.ActionJump, input.ActionCrouch, input.ActionSprint, input.ActionCancel, input.ActionAim, input.ActionExecute} {
		p.b.Set(a, held[a])
	}
	p.b.SetMove(mgl32.Vec2{st.MoveX, st.MoveY})
	if !p.started {
		p.started = true
		for _, name := range st.Tap {
			a, _ := input.ParseAction(name)
			if held[a] {
				p.b.Set(a, false)
				p.b.Set(a, true)
				continue
			}
			p.b.Tap(a)
		}
		if st.Look != 0 {
			p.b.AddLook(mgl32.Vec2{st.Look, 0})
		}
	}
	return p.b.Snapshot(), true
}

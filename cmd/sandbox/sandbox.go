package main

import (
	"fmt"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/gdamore/tcell/v2"
	"github.com/oomph-ac/locomotion/bodysim"
	"github.com/oomph-ac/locomotion/controller"
	"github.com/oomph-ac/locomotion/debug"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/overlay/teleport"
	"github.com/oomph-ac/locomotion/utils"
)

// cellsPerMetre is the horizontal zoom of the top-down view. Rows are compressed by half to
// make up for terminal cells being taller than wide.
const cellsPerMetre = float32(2)

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTarget = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
)

type sandbox struct {
	screen      tcell.Screen
	c           *controller.Controller
	body        *bodysim.Body
	world       *bodysim.World
	transitions *debug.TransitionLog
	keys        *keyState
}

func newSandbox(screen tcell.Screen, c *controller.Controller, b *bodysim.Body, w *bodysim.World, tl *debug.TransitionLog) *sandbox {
	return &sandbox{screen: screen, c: c, body: b, world: w, transitions: tl, keys: newKeyState()}
}

// handleEvent returns false once the sandbox should exit.
func (sb *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		sb.keys.handle(ev, time.Now())
	case *tcell.EventResize:
		sb.screen.Sync()
	}
	return true
}

func stateStyle(t movement.Tag) tcell.Style {
	switch t {
	case movement.TagSlide:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case movement.TagWallRun:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	case movement.TagAirborne:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case movement.TagStick:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
}

func heightStyle(h float32) tcell.Style {
	shade := int32(game.ClampFloat(60+h*20, 60, 220))
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(shade, shade, shade))
}

func (sb *sandbox) draw() {
	sb.screen.Clear()
	w, h := sb.screen.Size()
	centre := sb.body.Position()

	// Column and row of a world position, with the character in the middle of the screen.
	project := func(x, z float32) (int, int) {
		col := int((x-centre.X())*cellsPerMetre) + w/2
		row := h/2 - int((z-centre.Z())*cellsPerMetre/2)
		return col, row
	}

	for _, box := range sb.world.Boxes() {
		if box.Max().Y() <= 0 {
			continue
		}
		sb.drawBox(box, project, w, h)
	}
	if tp, ok := sb.teleportTarget(); ok {
		col, row := project(tp.Position.X(), tp.Position.Z())
		r := 'x'
		if tp.IsLedge {
			r = '^'
		}
		sb.put(col, row, r, styleTarget)
	}
	col, row := project(centre.X(), centre.Z())
	sb.put(col, row, facingRune(game.Yaw(sb.body.Rotation())), stateStyle(sb.c.ActiveTag()))

	snap := sb.c.Snapshot()
	sb.text(0, 0, fmt.Sprintf("%v/%v  tick %d", snap.Tag, snap.State, snap.Tick), styleHUD)
	sb.text(0, 1, utils.OrderedMapToString(controller.SnapshotData(snap)), styleDim)
	y := 3
	for _, t := range sb.transitions.Latest(6) {
		sb.text(0, y, fmt.Sprintf("%5d %v -> %v %s", t.Tick, t.From, t.To, utils.OrderedMapToString(debug.TransitionData(t))), styleDim)
		y++
	}
	sb.text(0, h-1, "wasd move  space jump  r sprint  c crouch  e aim  f execute  x cancel  arrows look  esc quit", styleHelp)
	sb.screen.Show()
}

func (sb *sandbox) teleportTarget() (teleport.Target, bool) {
	o, ok := sb.c.Overlays().Overlay(teleport.ID)
	if !ok || !sb.c.Overlays().Active(teleport.ID) {
		return teleport.Target{}, false
	}
	return o.(*teleport.Overlay).Target()
}

func (sb *sandbox) drawBox(box cube.BBox, project func(x, z float32) (int, int), w, h int) {
	x0, z1 := project(box.Min().X(), box.Min().Z())
	x1, z0 := project(box.Max().X(), box.Max().Z())
	style := heightStyle(box.Max().Y())
	for row := max(z0, 0); row <= min(z1, h-1); row++ {
		for col := max(x0, 0); col <= min(x1, w-1); col++ {
			sb.put(col, row, '#', style)
		}
	}
}

// facingRune returns an arrow for a yaw in degrees, 0 facing up the screen.
func facingRune(yaw float32) rune {
	arrows := []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	i := int((yaw+360+22.5)/45) % len(arrows)
	return arrows[i]
}

func (sb *sandbox) put(col, row int, r rune, style tcell.Style) {
	w, h := sb.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	sb.screen.SetContent(col, row, r, nil, style)
}

func (sb *sandbox) text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		sb.put(col, row, r, style)
		col++
	}
}

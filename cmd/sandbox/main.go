// Command sandbox drives the movement controller from the keyboard and draws the arena from
// above in the terminal.
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/bodysim"
	"github.com/oomph-ac/locomotion/controller"
	"github.com/oomph-ac/locomotion/debug"
	"github.com/oomph-ac/locomotion/internal/tool"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "settings file, created with defaults if missing")
	logPath    = flag.String("log", "", "file debug logs are written to")
)

const tickInterval = 16 * time.Millisecond

func main() {
	flag.Parse()
	out := io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		out = f
	}
	log := tool.Logger("debug", out)
	flush := tool.InitSentry(log)
	defer flush()
	tool.StartProfiler(log)

	s, err := tool.LoadSettings(*configPath)
	if err != nil {
		tool.Fatal(log, flush, err)
	}
	if lvl, err := logrus.ParseLevel(s.Debug.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	world := tool.Arena()
	b := bodysim.New(world, mgl32.Vec3{}, body.Capsule{Height: s.Character.CapsuleHeight, Radius: s.Character.CapsuleRadius})
	transitions := debug.NewTransitionLog(s.Debug.TransitionLogSize)
	c, err := controller.NewStandard(b, s,
		controller.WithLogger(log),
		controller.WithObserver(transitions),
		controller.WithObserver(debug.NewLogObserver(log)),
	)
	if err != nil {
		tool.Fatal(log, flush, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		tool.Fatal(log, flush, err)
	}
	if err := screen.Init(); err != nil {
		tool.Fatal(log, flush, err)
	}

	sb := newSandbox(screen, c, b, world, transitions)
	func() {
		defer screen.Fini()
		defer sentry.Recover()
		sb.run()
	}()
}

func (sb *sandbox) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	dt := float32(tickInterval.Seconds())
	for {
		select {
		case ev, ok := <-events:
			if !ok || !sb.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			in := sb.keys.snapshot(now)
			sb.c.Update(in, dt)
			sb.c.FixedUpdate(dt)
			sb.draw()
		}
	}
}

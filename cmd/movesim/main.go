// Command movesim runs an input script through the movement controller over the tool arena
// without a display, and reports every transition and the final state digest.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/body"
	"github.com/oomph-ac/locomotion/bodysim"
	"github.com/oomph-ac/locomotion/controller"
	"github.com/oomph-ac/locomotion/debug"
	"github.com/oomph-ac/locomotion/internal/script"
	"github.com/oomph-ac/locomotion/internal/tool"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/utils"
	"github.com/oomph-ac/locomotion/worker"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "settings file, created with defaults if missing")
	scriptPath = flag.String("script", "", "TOML input script, the built-in tour if empty")
	tickRate   = flag.Float64("rate", 60, "logic ticks per second")
	repeat     = flag.Int("repeat", 1, "number of concurrent runs compared for determinism")
	verbose    = flag.Bool("v", false, "log every transition")
)

type result struct {
	digest      uint64
	transitions int
	snapshot    controller.Snapshot
}

func main() {
	flag.Parse()
	log := tool.Logger("info", os.Stdout)
	flush := tool.InitSentry(log)
	defer flush()
	defer sentry.Recover()
	tool.StartProfiler(log)

	s, err := tool.LoadSettings(*configPath)
	if err != nil {
		tool.Fatal(log, flush, err)
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else if lvl, err := logrus.ParseLevel(s.Debug.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	sc := script.Default()
	if *scriptPath != "" {
		if sc, err = script.Load(*scriptPath); err != nil {
			tool.Fatal(log, flush, err)
		}
	}
	dt := float32(1 / *tickRate)
	log.Infof("running %q for %d ticks at %v Hz", sc.Name, sc.Ticks(), *tickRate)

	if *repeat <= 1 {
		res, err := run(s, sc, dt, log)
		if err != nil {
			tool.Fatal(log, flush, err)
		}
		report(log, res)
		return
	}

	pool := worker.New(0)
	defer pool.Close()

	var (
		mu      sync.Mutex
		results []result
		errs    []error
	)
	quiet := tool.Logger("warning", os.Stderr)
	for i := 0; i < *repeat; i++ {
		pool.Submit(func() {
			res, err := run(s, sc, dt, quiet)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			results = append(results, res)
		})
	}
	pool.Wait()
	if len(errs) > 0 {
		tool.Fatal(log, flush, errs[0])
	}
	for _, r := range results[1:] {
		if r.digest != results[0].digest {
			tool.Fatal(log, flush, fmt.Errorf("runs diverged: digest %x != %x", r.digest, results[0].digest))
		}
	}
	log.Infof("%d runs agree", len(results))
	report(log, results[0])
}

func run(s settings.Settings, sc script.Script, dt float32, log *logrus.Logger) (result, error) {
	b := bodysim.New(tool.Arena(), mgl32.Vec3{}, body.Capsule{Height: s.Character.CapsuleHeight, Radius: s.Character.CapsuleRadius})
	tlog := debug.NewTransitionLog(s.Debug.TransitionLogSize)
	c, err := controller.NewStandard(b, s,
		controller.WithLogger(log),
		controller.WithObserver(tlog),
		controller.WithObserver(debug.NewLogObserver(log)),
	)
	if err != nil {
		return result{}, err
	}

	p := script.NewPlayer(sc)
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		c.Update(in, dt)
		c.FixedUpdate(dt)
	}
	snap := c.Snapshot()
	return result{digest: snap.Digest(), transitions: int(tlog.Total()), snapshot: snap}, nil
}

func report(log *logrus.Logger, r result) {
	s := r.snapshot
	fields := utils.OrderedMapToString(controller.SnapshotData(s))
	log.Infof("finished after %d ticks with %d transitions: %s", s.Tick, r.transitions, fields)
	log.Infof("digest %016x", r.digest)
}

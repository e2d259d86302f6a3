// Package tool holds the setup shared by the command line tools: logging, crash reporting,
// profiling and the test arena.
package tool

import (
	"io"
	"os"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/locomotion/bodysim"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/sirupsen/logrus"
)

// Logger returns a text logger writing to out at the given logrus level. Unknown levels
// fall back to info.
func Logger(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// InitSentry enables crash reporting when SENTRY_DSN is set. The returned function flushes
// pending events and must be called before exiting.
func InitSentry(log *logrus.Logger) func() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return func() {}
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, AttachStacktrace: true}); err != nil {
		log.Errorf("sentry init failed: %v", err)
		return func() {}
	}
	return func() {
		sentry.Flush(time.Second * 5)
	}
}

// Fatal reports err and exits.
func Fatal(log *logrus.Logger, flush func(), err error) {
	sentry.CaptureException(err)
	log.Error(err)
	flush()
	os.Exit(1)
}

// StartProfiler serves the runtime stats view when PPROF_ENABLED is set.
func StartProfiler(log *logrus.Logger) {
	if os.Getenv("PPROF_ENABLED") == "" {
		return
	}
	// The viewer reads its configuration when the manager is created.
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

	mgr := statsview.New()
	go mgr.Start()
	log.Infof("stats view listening on localhost:8080")
}

// LoadSettings loads path, or returns the defaults if path is empty.
func LoadSettings(path string) (settings.Settings, error) {
	if path == "" {
		return settings.DefaultSettings(), nil
	}
	return settings.Load(path)
}

// Arena returns a world with a floor, a long wall to run along, a low step, a ledge and a
// pillar.
func Arena() *bodysim.World {
	return bodysim.NewWorld(
		// floor
		cube.Box(-50, -1, -50, 50, 0, 50),
		// wall along +Z on the right
		cube.Box(1.2, 0, 8, 1.7, 4, 40),
		// step
		cube.Box(-6, 0, 2, -2, 0.3, 6),
		// ledge
		cube.Box(-6, 0, 14, 6, 2.2, 18),
		// pillar
		cube.Box(-10, 0, -10, -8, 10, -8),
	)
}

package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/utils"
	"github.com/sirupsen/logrus"
)

func TestTransitionLogKeepsNewest(t *testing.T) {
	l := NewTransitionLog(3)
	for i := 0; i < 5; i++ {
		l.OnTransition(movement.Transition{Tick: uint64(i)})
	}
	all := l.All()
	if len(all) != 3 || all[0].Tick != 2 || all[2].Tick != 4 {
		t.Fatalf("unexpected kept transitions %+v", all)
	}
	if latest := l.Latest(2); len(latest) != 2 || latest[0].Tick != 3 {
		t.Fatalf("unexpected latest transitions %+v", latest)
	}
	if latest := l.Latest(10); len(latest) != 3 {
		t.Fatalf("expected latest to be bounded by the log, got %d", len(latest))
	}
	if l.Total() != 5 {
		t.Fatalf("expected 5 recorded transitions, got %d", l.Total())
	}
}

func TestTransitionData(t *testing.T) {
	tr := movement.Transition{
		From:      movement.TagSlide,
		To:        movement.TagNone,
		FromState: movement.StateSliding,
		Cause:     movement.CauseSelf,
		Reason:    "timeout",
		Tick:      7,
		Time:      0.5,
	}
	got := utils.OrderedMapToString(TransitionData(tr))
	want := "[from_state=sliding to_state=none cause=self reason=timeout tick=7 time=0.5]"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	NewLogObserver(log).OnTransition(movement.Transition{From: movement.TagLocomotion, To: movement.TagAirborne})
	if !strings.Contains(buf.String(), "locomotion -> airborne") {
		t.Fatalf("expected transition to be logged, got %q", buf.String())
	}
}

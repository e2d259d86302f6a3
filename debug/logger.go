package debug

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/utils"
	"github.com/sirupsen/logrus"
)

// LogObserver writes every transition to a logger at debug level.
type LogObserver struct {
	log *logrus.Logger
}

// NewLogObserver returns an observer writing to log.
func NewLogObserver(log *logrus.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnTransition(t movement.Transition) {
	o.log.Debugf("%s -> %s %s", t.From, t.To, utils.OrderedMapToString(TransitionData(t)))
}

// TransitionData returns the fields of a transition in a stable order.
func TransitionData(t movement.Transition) *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("from_state", t.FromState)
	data.Set("to_state", t.ToState)
	data.Set("cause", t.Cause)
	if t.Reason != "" {
		data.Set("reason", t.Reason)
	}
	data.Set("tick", t.Tick)
	data.Set("time", game.Round32(float32(t.Time), 3))
	return data
}

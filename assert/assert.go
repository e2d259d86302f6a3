package assert

import "github.com/oomph-ac/locomotion/oerror"

// IsTrue panics with the formatted message if ok is false. It guards against programmer
// errors only and must never be used for conditions input can trigger.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

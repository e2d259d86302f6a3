package utils

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
)

func TestOrderedMapToString(t *testing.T) {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("from", "slide")
	data.Set("to", "airborne")
	data.Set("tick", 3)
	if got := OrderedMapToString(data); got != "[from=slide to=airborne tick=3]" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := OrderedMapToString(nil); got != "[]" {
		t.Fatalf("expected empty brackets, got %q", got)
	}
}

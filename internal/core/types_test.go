package core

import (
	"slices"
	"strings"
	"testing"
)

type nopSim struct{ size Size }

func (n *nopSim) Name() string   { return "nop" }
func (n *nopSim) Size() Size     { return n.size }
func (n *nopSim) Reset(int64)    {}
func (n *nopSim) Step()          {}
func (n *nopSim) Cells() []uint8 { return make([]uint8, n.size.W*n.size.H) }

func TestRegistryLookup(t *testing.T) {
	Register("nop-test", func(map[string]string) (Sim, error) {
		return &nopSim{size: Size{W: 2, H: 2}}, nil
	})
	Register("", nil)

	if !slices.Contains(Names(), "nop-test") {
		t.Fatalf("registered sim missing from %v", Names())
	}
	sim, err := Lookup("nop-test", nil)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if sim.Size() != (Size{W: 2, H: 2}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}

	_, err = Lookup("does-not-exist", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown sim") {
		t.Fatalf("expected unknown sim error, got %v", err)
	}
}

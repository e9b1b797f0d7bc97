package instrument

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tally struct {
	Count   int
	History []int
}

func (t tally) Clone() tally {
	t.History = append([]int(nil), t.History...)
	return t
}

func TestStore_ApplyPropagatesBeforeCommit(t *testing.T) {
	s := NewStore(tally{})
	var seen [][2]int
	s.OnChange(func(prev, next tally) {
		if s.State().Count != prev.Count {
			t.Errorf("callback ran after commit: store=%d prev=%d", s.State().Count, prev.Count)
		}
		seen = append(seen, [2]int{prev.Count, next.Count})
	})

	s.Apply(func(t *tally) { t.Count++ })
	prev, next := s.Apply(func(t *tally) { t.Count++ })

	if diff := cmp.Diff([][2]int{{0, 1}, {1, 2}}, seen); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
	if prev.Count != 1 || next.Count != 2 || s.State().Count != 2 {
		t.Errorf("Apply returned (%d, %d), state %d", prev.Count, next.Count, s.State().Count)
	}
}

func TestStore_MutatorGetsExclusiveCopy(t *testing.T) {
	s := NewStore(tally{History: []int{1}})
	var before tally
	s.OnChange(func(prev, _ tally) { before = prev })

	s.Apply(func(t *tally) { t.History[0] = 42 })

	if before.History[0] != 1 {
		t.Errorf("mutator changed the previous state: %v", before.History)
	}
	if s.State().History[0] != 42 {
		t.Errorf("mutation not committed: %v", s.State().History)
	}
}

func TestStore_NilMutator(t *testing.T) {
	s := NewStore(tally{Count: 3})
	calls := 0
	s.OnChange(func(prev, next tally) {
		calls++
		if prev.Count != next.Count {
			t.Error("nil mutator should not change state")
		}
	})
	s.Apply(nil)
	if calls != 1 {
		t.Errorf("expected one propagation, got %d", calls)
	}
}

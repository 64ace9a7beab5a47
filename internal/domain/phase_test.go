package domain

import "testing"

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		from, to Phase
		ok       bool
	}{
		{PhaseIdle, PhaseIngesting, true},
		{PhaseIngesting, PhaseIngesting, true},
		{PhaseIngesting, PhaseGenerated, true},
		{PhaseGenerated, PhaseRewritten, true},
		{PhaseGenerated, PhaseEmitted, true},
		{PhaseRewritten, PhaseEmitted, true},
		{PhaseIdle, PhaseGenerated, false},
		{PhaseGenerated, PhaseIngesting, false},
		{PhaseEmitted, PhaseRewritten, false},
		{PhaseRewritten, PhaseGenerated, false},
	}
	for _, c := range cases {
		err := CheckTransition(c.from, c.to)
		if c.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", c.from, c.to, err)
		}
		if !c.ok {
			if err == nil {
				t.Errorf("%s -> %s: expected error", c.from, c.to)
				continue
			}
			if !IsKind(err, KindInvalidPhase) {
				t.Errorf("%s -> %s: expected invalid_phase kind, got %v", c.from, c.to, err)
			}
		}
	}
}

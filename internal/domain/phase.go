package domain

import "fmt"

// Phase is the state of one build pass.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseIngesting Phase = "ingesting"
	PhaseGenerated Phase = "generated"
	PhaseRewritten Phase = "rewritten"
	PhaseEmitted   Phase = "emitted"
)

// CheckTransition validates a phase transition.
// Rewriting is optional: Generated may go straight to Emitted.
func CheckTransition(from, to Phase) error {
	if isAllowedTransition(from, to) {
		return nil
	}
	return &DomainError{
		Kind:  KindInvalidPhase,
		Msg:   fmt.Sprintf("disallowed transition %s -> %s", from, to),
		Cause: ErrInvalidPhase,
	}
}

func isAllowedTransition(from, to Phase) bool {
	switch from {
	case PhaseIdle:
		return to == PhaseIngesting
	case PhaseIngesting:
		// repeated ingestion is allowed until generation
		return to == PhaseIngesting || to == PhaseGenerated
	case PhaseGenerated:
		return to == PhaseRewritten || to == PhaseEmitted
	case PhaseRewritten:
		return to == PhaseEmitted
	default:
		return false
	}
}

package model

// CheckStatus classifies a check-in decision.
type CheckStatus string

const (
	// StatusAdmit means every required check-in question has a satisfying
	// answer.
	StatusAdmit CheckStatus = "admit"
	// StatusIncomplete means at least one required question is unanswered;
	// the caller should prompt for the missing input rather than deny.
	StatusIncomplete CheckStatus = "incomplete"
	// StatusUnknownError means the local cache could not be read. Never
	// treated as an admit.
	StatusUnknownError CheckStatus = "unknown_error"
)

// ValidationOutcome is the result of the entry-requirements check. Unmet is
// populated only for StatusIncomplete, in the item's question order.
type ValidationOutcome struct {
	Status CheckStatus `json:"status"`
	Unmet  []Question  `json:"unmet,omitempty"`
}

func AdmitOutcome() ValidationOutcome {
	return ValidationOutcome{Status: StatusAdmit}
}

func IncompleteOutcome(unmet []Question) ValidationOutcome {
	return ValidationOutcome{Status: StatusIncomplete, Unmet: unmet}
}

func UnknownErrorOutcome() ValidationOutcome {
	return ValidationOutcome{Status: StatusUnknownError}
}

package status

// Metric keys written by the turn scheduler and action stack
const (
	KeyTicks         = "turn.ticks"
	KeyGroupAdvances = "turn.group_advances"
	KeyAdmitted      = "turn.admitted"
	KeyForfeits      = "turn.forfeits"
	KeyActiveGroup   = "turn.active_group"
	KeyPending       = "action.pending"
	KeyFinished      = "action.finished"
	KeyUnfinished    = "action.unfinished"
	KeyBudgetPauses  = "action.budget_pauses"
	KeyLastDrainMs   = "action.last_drain_ms"
)

// Host keys
const (
	KeyMuted = "audio.muted"
)

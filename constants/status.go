package constants

// DocumentOutcome is the per-document result of a pipeline run, used as a metrics label.
type DocumentOutcome string

// Stable values (exported as label values, keep them short).
const (
	OutcomeSaved   DocumentOutcome = "saved"   // row inserted and document flagged
	OutcomeFailed  DocumentOutcome = "failed"  // extraction or normalization error
	OutcomeMissing DocumentOutcome = "missing" // no matching PDF in the container
)

// RunOutcome is the result of a whole pipeline run.
type RunOutcome string

const (
	RunOK       RunOutcome = "ok"
	RunEmpty    RunOutcome = "empty"
	RunSkipped  RunOutcome = "skipped" // another run holds the lock
	RunNoConfig RunOutcome = "no_config"
	RunFailed   RunOutcome = "failed"
)

package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrAction   = "action"
	AttrOutcome  = "outcome"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}

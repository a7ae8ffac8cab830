package validation

// Skip reasons, also used as the "reason" log attribute.
const (
	reasonAborted        = "aborted"
	reasonForceSkip      = "force_skip"
	reasonAlreadyInvalid = "already_invalid"
	reasonElementSkip    = "element_force_skip"
)

// state is the bookkeeping every validator carries.
// invalid only ever goes from false to true.
type state struct {
	invalid       bool
	skipIfInvalid bool
	forceSkip     bool
	// err is the fault that escaped because no handler was given.
	err error
}

// skipReason is evaluated before every step and returns "" when the step runs.
func (s *state) skipReason() string {
	switch {
	case s.err != nil:
		return reasonAborted
	case s.forceSkip:
		return reasonForceSkip
	case s.skipIfInvalid && s.invalid:
		return reasonAlreadyInvalid
	default:
		return ""
	}
}

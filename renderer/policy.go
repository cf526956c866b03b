package renderer

import (
	"fmt"
	"strings"
)

// FailurePolicy controls how a failed render or tone-map step affects the
// remaining jobs.
type FailurePolicy int

const (
	// Record the failure in the summary and continue silently.
	IgnoreFailures FailurePolicy = iota

	// Log a warning and continue.
	LogFailures

	// Stop the run at the first failing step.
	AbortOnFailure
)

var policyNames = map[FailurePolicy]string{
	IgnoreFailures: "ignore",
	LogFailures:    "log",
	AbortOnFailure: "abort",
}

func (p FailurePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("FailurePolicy(%d)", int(p))
}

// ParsePolicy maps a policy name (ignore, log, abort) to a FailurePolicy.
func ParsePolicy(name string) (FailurePolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for policy, policyName := range policyNames {
		if policyName == name {
			return policy, nil
		}
	}
	return IgnoreFailures, fmt.Errorf("%w: unknown failure policy %q (expected ignore, log or abort)", ErrInvalidOptions, name)
}

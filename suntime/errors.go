package suntime

import "fmt"

// NoEventError reports that a sun event does not occur at a location on
// a given date (polar day or polar night). It is a legitimate domain
// outcome, not a defect: callers decide how to handle it.
type NoEventError struct {
	Event  Event
	Reason string
}

func (e *NoEventError) Error() string {
	return fmt.Sprintf("the sun %s on this location on the specified date", e.Reason)
}

// The two polar conditions. The calculator returns these exact values,
// so errors.Is works against them. Note that the condition is a property
// of the date and location, not of the requested event: asking for the
// sunrise during polar day yields ErrNeverSets.
var (
	ErrNeverRises = &NoEventError{Event: Rise, Reason: "never rises"}
	ErrNeverSets  = &NoEventError{Event: Set, Reason: "never sets"}
)

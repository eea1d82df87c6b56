// Package costbasis implements the per-position holdings ledger and the
// pluggable cost basis policies (FIFO and weighted average) used to match
// security dispositions against open acquisition lots.
package costbasis

import "fmt"

// Method selects the cost basis policy applied to a batch.
type Method string

const (
	MethodFIFO        Method = "FIFO"
	MethodAverageCost Method = "AVERAGE_COST"
)

func (m Method) String() string { return string(m) }

// ParseMethod parses a configuration value into a Method. An unrecognized
// value is a configuration error; callers treat it as fatal at startup.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodFIFO:
		return MethodFIFO, nil
	case MethodAverageCost:
		return MethodAverageCost, nil
	default:
		return "", fmt.Errorf("unsupported cost basis method: %q", s)
	}
}

// NewStrategy constructs a fresh, empty strategy for the given method.
// Each batch gets its own strategy instance; ledger state never outlives
// a single batch invocation.
func NewStrategy(m Method) Strategy {
	switch m {
	case MethodAverageCost:
		return NewAverageCostStrategy()
	default:
		return NewFIFOStrategy()
	}
}

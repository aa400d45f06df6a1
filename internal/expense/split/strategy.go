package split

import (
	"errors"
	"fmt"
	"math"
)

// Method defines how an expense is divided among its participants
type Method string

const (
	MethodEqual  Method = "EQUAL"
	MethodCustom Method = "CUSTOM"
)

// Strategy is the interface that all split strategies must implement.
// Participants are raw reference strings (id, email or username); shares are
// returned keyed by the same raw references, unresolved.
type Strategy interface {
	// Calculate computes the share of the total owed per participant
	Calculate(totalAmount float64, participants []string, amounts map[string]float64) (map[string]float64, error)

	// Method returns the method identifier for this strategy
	Method() Method

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount float64, participants []string, amounts map[string]float64) error
}

// Factory creates split strategies based on the requested method
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the method
func (f *Factory) Create(method Method) (Strategy, error) {
	switch method {
	case MethodEqual:
		return &EqualStrategy{}, nil
	case MethodCustom:
		return &CustomStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split method: %s", method)
	}
}

// CreateFromString creates a strategy from a string method. An empty string
// selects the equal split, matching how upstream records omit the field.
func (f *Factory) CreateFromString(method string) (Strategy, error) {
	if method == "" {
		return &EqualStrategy{}, nil
	}
	return f.Create(Method(method))
}

var (
	ErrNoParticipants  = errors.New("at least one participant is required")
	ErrNegativeAmount  = errors.New("amounts cannot be negative")
	ErrMissingAmount   = errors.New("custom amount required for all participants")
	ErrAmountsMismatch = errors.New("custom amounts must sum to total amount")
)

// amountsTolerance absorbs cent-level floating point error in upstream data
const amountsTolerance = 0.01

// sumsToTotal reports whether the amounts sum to the total within tolerance
func sumsToTotal(totalAmount float64, amounts map[string]float64) bool {
	var sum float64
	for _, a := range amounts {
		sum += a
	}
	return math.Abs(sum-totalAmount) <= amountsTolerance
}

package split

// =============================================================================
// CUSTOM SPLIT STRATEGY
// Each participant owes a specified amount (must cover everyone and sum to total)
// =============================================================================

// CustomStrategy implements the Strategy interface for per-participant amounts
type CustomStrategy struct{}

// Method returns the split method identifier
func (s *CustomStrategy) Method() Method {
	return MethodCustom
}

// Validate checks if the inputs are valid for a custom split
func (s *CustomStrategy) Validate(totalAmount float64, participants []string, amounts map[string]float64) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}

	for _, p := range participants {
		amount, ok := amounts[p]
		if !ok {
			return ErrMissingAmount
		}
		if amount < 0 {
			return ErrNegativeAmount
		}
	}

	if !sumsToTotal(totalAmount, amounts) {
		return ErrAmountsMismatch
	}

	return nil
}

// Calculate returns the specified amount for each participant
func (s *CustomStrategy) Calculate(totalAmount float64, participants []string, amounts map[string]float64) (map[string]float64, error) {
	if err := s.Validate(totalAmount, participants, amounts); err != nil {
		return nil, err
	}

	shares := make(map[string]float64, len(participants))
	for _, p := range participants {
		shares[p] = amounts[p]
	}

	return shares, nil
}

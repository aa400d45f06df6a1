package split

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense equally among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Method returns the split method identifier
func (s *EqualStrategy) Method() Method {
	return MethodEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount float64, participants []string, amounts map[string]float64) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Calculate divides the total amount evenly among all participants.
// No rounding is applied; presenting currency precision is the caller's
// concern.
func (s *EqualStrategy) Calculate(totalAmount float64, participants []string, amounts map[string]float64) (map[string]float64, error) {
	if err := s.Validate(totalAmount, participants, amounts); err != nil {
		return nil, err
	}

	share := totalAmount / float64(len(participants))

	shares := make(map[string]float64, len(participants))
	for _, p := range participants {
		shares[p] = share
	}

	return shares, nil
}

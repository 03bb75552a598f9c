package score

// SampleTotalValidators is the network size paired with [Sample].
const SampleTotalValidators uint64 = 1000

// Validator holds the raw performance counters of a single validator.
type Validator struct {
	BlocksSigned           uint64  // Blocks signed by the validator
	BlocksAssigned         uint64  // Blocks assigned to the validator
	BlocksProposed         uint64  // Blocks proposed by the validator
	BlocksProposedIncluded uint64  // Proposed blocks included on chain
	AttestationsCreated    uint64  // Attestations created
	AttestationsIncluded   uint64  // Attestations included on chain
	Slashings              uint64  // Slashing events
	InitialBalance         float64 // Balance when the validator joined (ETH)
	CurrentBalance         float64 // Current balance (ETH)
}

// Sample returns the compiled-in validator scored by the CLI.
func Sample() Validator {
	return Validator{
		BlocksSigned:           950,
		BlocksAssigned:         1000,
		BlocksProposed:         100,
		BlocksProposedIncluded: 98,
		AttestationsCreated:    1200,
		AttestationsIncluded:   1180,
		Slashings:              0,
		InitialBalance:         32.0,
		CurrentBalance:         34.0,
	}
}

// UptimeScore returns signed/assigned blocks as a percentage.
func (v Validator) UptimeScore() float64 {
	return float64(v.BlocksSigned) / float64(v.BlocksAssigned) * 100
}

// ProposalInclusionRate returns included/proposed blocks as a percentage.
func (v Validator) ProposalInclusionRate() float64 {
	return float64(v.BlocksProposedIncluded) / float64(v.BlocksProposed) * 100
}

// AttestationInclusionRate returns included/created attestations as a percentage.
func (v Validator) AttestationInclusionRate() float64 {
	return float64(v.AttestationsIncluded) / float64(v.AttestationsCreated) * 100
}

// SlashingPrevention returns 1 - slashings/totalValidators.
func (v Validator) SlashingPrevention(totalValidators uint64) float64 {
	return 1 - float64(v.Slashings)/float64(totalValidators)
}

// BalanceGrowth returns the balance change relative to the initial balance.
// This is a ratio, not a percentage.
func (v Validator) BalanceGrowth() float64 {
	return (v.CurrentBalance - v.InitialBalance) / v.InitialBalance
}

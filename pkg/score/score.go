package score

import (
	"fmt"
	"log/slog"
	"math"
)

// ModelVersion is the current scoring model version.
const ModelVersion = "1.0.0"

const (
	// Category weights (sum to 1.0).
	UptimeWeight      = 0.40
	ProposalWeight    = 0.20
	AttestationWeight = 0.20
	SlashingWeight    = 0.10
	BalanceWeight     = 0.10
)

// CategoryWeight describes a scoring category and its weight.
type CategoryWeight struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Categories returns the model's scoring categories with their weights.
func Categories() []CategoryWeight {
	return []CategoryWeight{
		{Name: "uptime", Weight: UptimeWeight},
		{Name: "proposal_inclusion", Weight: ProposalWeight},
		{Name: "attestation_inclusion", Weight: AttestationWeight},
		{Name: "slashing_prevention", Weight: SlashingWeight},
		{Name: "balance_growth", Weight: BalanceWeight},
	}
}

// Breakdown is the composite score together with each of its terms.
type Breakdown struct {
	Version         string `json:"version" yaml:"version"`
	TotalValidators uint64 `json:"total_validators" yaml:"totalValidators"`

	Uptime                   Metric `json:"uptime" yaml:"uptime"`
	ProposalInclusionRate    Metric `json:"proposal_inclusion_rate" yaml:"proposalInclusionRate"`
	AttestationInclusionRate Metric `json:"attestation_inclusion_rate" yaml:"attestationInclusionRate"`
	SlashingPrevention       Metric `json:"slashing_prevention" yaml:"slashingPrevention"`
	BalanceGrowth            Metric `json:"balance_growth" yaml:"balanceGrowth"`

	Weighted []CategoryScore `json:"weighted" yaml:"weighted"`

	Score Metric `json:"score" yaml:"score"`
}

// CategoryScore is a single weighted contribution to the final score.
type CategoryScore struct {
	Name  string `json:"name" yaml:"name"`
	Value Metric `json:"value" yaml:"value"`
}

// Compute returns the EVS for v. No clamping is applied, and a zero
// denominator yields a non-finite score.
func Compute(v Validator, totalValidators uint64) float64 {
	return float64(Explain(v, totalValidators).Score)
}

// Explain computes the EVS for v and returns every intermediate term.
func Explain(v Validator, totalValidators uint64) *Breakdown {
	uptime := v.UptimeScore()
	us := uptime * UptimeWeight
	slog.Debug(fmt.Sprintf("uptime: %.4f (raw=%.4f)", us, uptime))

	proposal := v.ProposalInclusionRate()
	pir := proposal * ProposalWeight
	slog.Debug(fmt.Sprintf("proposal inclusion: %.4f (raw=%.4f)", pir, proposal))

	attestation := v.AttestationInclusionRate()
	air := attestation * AttestationWeight
	slog.Debug(fmt.Sprintf("attestation inclusion: %.4f (raw=%.4f)", air, attestation))

	slashing := v.SlashingPrevention(totalValidators)
	sp := slashing * SlashingWeight
	slog.Debug(fmt.Sprintf("slashing prevention: %.4f (raw=%.4f, validators=%d)",
		sp, slashing, totalValidators))

	growth := v.BalanceGrowth()
	bg := growth * BalanceWeight
	slog.Debug(fmt.Sprintf("balance growth: %.4f (raw=%.4f)", bg, growth))

	evs := us + pir + air + sp + bg
	slog.Debug(fmt.Sprintf("evs: %.4f", evs))

	return &Breakdown{
		Version:                  ModelVersion,
		TotalValidators:          totalValidators,
		Uptime:                   Metric(uptime),
		ProposalInclusionRate:    Metric(proposal),
		AttestationInclusionRate: Metric(attestation),
		SlashingPrevention:       Metric(slashing),
		BalanceGrowth:            Metric(growth),
		Weighted: []CategoryScore{
			{Name: "uptime", Value: Metric(us)},
			{Name: "proposal_inclusion", Value: Metric(pir)},
			{Name: "attestation_inclusion", Value: Metric(air)},
			{Name: "slashing_prevention", Value: Metric(sp)},
			{Name: "balance_growth", Value: Metric(bg)},
		},
		Score: Metric(evs),
	}
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

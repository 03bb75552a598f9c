// Package score implements the Ethereum Validator Score (EVS) model.
// It exposes the [Validator] record, its five sub-metrics, the fixed
// category weights, [Compute], [Explain], and [ModelVersion].
package score

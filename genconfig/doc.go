// Package genconfig centralizes every tunable constant governing network
// generation (segment widths and lengths, branch probabilities and
// thresholds, the intersection/snap thresholds, the segment count limit,
// and the random-angle deviations) behind a single Config struct and a
// functional-options constructor.
//
// DefaultConfig returns the stock constants; Option values let a caller
// override individual fields without hand-assembling the whole struct.
package genconfig

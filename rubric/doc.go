// Package rubric holds the fixed grading rubric and the arithmetic that
// turns raw search metrics into points.
//
// What
//
//   - Entries: the ordered (label, points) table. Points sum past 100; the
//     grand total is capped by the caller.
//   - Scores: label → awarded points, with per-label accumulation rules
//     (allMethods sums, heuristic takes the minimum, everything else the
//     maximum).
//   - PartialCredit: linear interpolation clamped to [0, points].
//   - CostBucket / StatesBucket: logarithmic bins for solution path cost and
//     generated-state counts.
//
// Buckets
//
//	cost 2            → 2actions
//	cost 4..7         → 4-7actions ... 64+ → 64+actions   (log2 bins)
//	states [4^k,4^k+1) → nodes bucket k-1, below 16 first, 262144+ last  (log4 bins)
//
// Errors
//
//   - ErrUnknownLabel from PartialCredit and Award for labels outside the table.
package rubric

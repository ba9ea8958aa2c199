// Package constraints implements the local-constraint resolver: given a
// candidate segment and the set of existing segments retrieved from a
// quadtree query around it, decide whether the candidate is accepted
// unchanged, accepted with a mutation (its end point moved to an
// intersection or snap point), or rejected outright.
//
// Resolve scans every retrieved neighbor and keeps the single
// highest-priority action seen (intersection outranks end-snap outranks
// line-snap), breaking ties by last-seen order — it never stops early at
// the first match, since an earlier lower-priority match must yield to a
// later higher-priority one.
package constraints

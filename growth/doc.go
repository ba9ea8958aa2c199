// Package growth drives the priority-scheduled simulation loop that turns
// two seed highway segments into a full road network: repeatedly popping
// the minimum-T candidate, resolving it against the existing graph via
// constraints.Resolve, splicing an accepted candidate into roadnet's link
// graph and quadtree.Node spatial index, and pushing the branch.Generate
// continuations it spawns back onto the queue.
//
// The queue is a container/heap min-heap keyed by T with insertion order
// as tiebreaker. Entries are never superseded once pushed, so popping
// needs no visited-skip check.
package growth

// Package rtree implements backend.Backend as an R*-tree: Guttman
// insertion (ChooseSubtree) plus an R*-style split that picks the split
// axis by summed margin and the split index by minimum overlap. It is
// the recommended backend once a partition's fragment count grows
// large enough that zorder's linear scan stops paying for itself.
//
// Deletions are tombstones, not removals: an overwritten leaf entry is
// marked inactive and skipped by Query and Extent, but its slot is only
// reclaimed by Rebuild. There is no forced reinsertion on overflow —
// every overflowing node is split outright, trading a small amount of
// tree quality for a simpler, more predictable insert path.
package rtree

// Package zorder implements backend.Backend as a flat slice of
// fragments kept in Z-order (Morton code of each fragment's center).
// It trades query complexity (a linear scan) for simplicity and cache
// locality, and is the recommended backend while a partition's
// fragment count is small; rtree.Tree is the recommended backend once
// fragment counts grow large enough that a spatial index pays for
// itself.
package zorder

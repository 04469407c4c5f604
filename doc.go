// Package spandex is a 2D spatial index for last-writer-wins rectangle
// overlays.
//
// # What is spandex?
//
// A set of composable packages for storing values over axis-aligned
// rectangles, where a later write clips away whatever it overlaps:
//
//   - rect       — closed-interval rectangle algebra over ±infinity-capable coordinates
//   - geom       — rectangle subtraction and bounding-extent computation
//   - backend    — the Fragment type and the Backend contract shared by both stores
//   - zorder     — a Z-order-sorted linear backend, simplest for small fragment counts
//   - rtree      — an R*-tree backend for large fragment counts
//   - partition  — a vertical partition joining one backend per attribute key
//
// Inserting a rectangle over existing coverage doesn't merge or error:
// it subtracts itself from every fragment it overlaps, so the store
// stays a disjoint partition of the plane no matter the order values
// arrive in. Two interchangeable backends implement the same contract,
// trading simplicity for query performance as a partition's fragment
// count grows; partition.Partition builds a multi-attribute overlay on
// top of either one.
package spandex

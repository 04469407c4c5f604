// Package backend defines the Fragment type and the Backend contract
// shared by the zorder and rtree stores: Insert (LWW rectangle
// decomposition), Query (lazy intersection scan), and Extent. It also
// hosts Decompose, the backend-agnostic half of the insert algorithm
// that both stores build their own bookkeeping around.
package backend

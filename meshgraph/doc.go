// Package meshgraph treats a cloth mesh as an undirected graph whose edges
// are the active springs, enabling tear analysis.
//
// What:
//
//   - ConnectedComponents: the pieces a cloth has been torn into.
//   - Fragments: how many pieces there are.
//   - Anchored / Detached: pieces that still hold a static point, and pieces
//     that are falling freely.
//
// Why:
//
//   - Hosts report "cloth torn in two" events and fade out detached scraps.
//   - Tests assert that tearing really separates the mesh.
//
// Determinism:
//
//   - Components are discovered from the lowest unvisited PointID upward and
//     filled in BFS order; neighbors are visited in spring registration order.
//     The same mesh always yields the same slices.
//
// Complexity:
//
//   - Every function: O(P + S) time, O(P + S) memory.
package meshgraph

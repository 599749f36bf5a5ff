package meshgraph

import "github.com/katalvlaran/cloth2d/core"

// Topology is the read-only view of a mesh that the analysis needs.
// *core.Mesh satisfies it.
type Topology interface {
	PointCount() int
	EachPoint(fn func(id core.PointID, p *core.PointMass))
	EachSpring(fn func(id core.SpringID, s core.Spring))
}

// adjacency builds undirected neighbor lists over the active springs of t.
func adjacency(t Topology) [][]core.PointID {
	adj := make([][]core.PointID, t.PointCount())
	t.EachSpring(func(_ core.SpringID, s core.Spring) {
		if !s.Active() {
			return
		}
		adj[s.A] = append(adj[s.A], s.B)
		adj[s.B] = append(adj[s.B], s.A)
	})

	return adj
}

// ConnectedComponents returns the pieces of t: maximal sets of points joined
// by active springs. An isolated point is a component of its own.
// Each component is listed in BFS order from its lowest PointID.
//
// Time:   O(P + S).
// Memory: O(P + S) for adjacency, visited flags and output.
func ConnectedComponents(t Topology) [][]core.PointID {
	adj := adjacency(t)
	seen := make([]bool, len(adj))
	var comps [][]core.PointID

	for start := range adj {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []core.PointID{core.PointID(start)}
		seen[start] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Fragments returns the number of connected components of t.
// An empty mesh has zero fragments.
func Fragments(t Topology) int {
	return len(ConnectedComponents(t))
}

// Anchored returns the components that contain at least one static point.
func Anchored(t Topology) [][]core.PointID {
	return partition(t, true)
}

// Detached returns the components without any static point; under gravity
// they fall freely.
func Detached(t Topology) [][]core.PointID {
	return partition(t, false)
}

func partition(t Topology, anchored bool) [][]core.PointID {
	static := make([]bool, t.PointCount())
	t.EachPoint(func(id core.PointID, p *core.PointMass) {
		static[id] = p.Static()
	})

	var out [][]core.PointID
	for _, comp := range ConnectedComponents(t) {
		has := false
		for _, id := range comp {
			if static[id] {
				has = true
				break
			}
		}
		if has == anchored {
			out = append(out, comp)
		}
	}

	return out
}

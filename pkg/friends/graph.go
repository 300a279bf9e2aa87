package friends

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Graph is a gonum view of a Directory. Node IDs follow insertion order;
// dangling references and self references are dropped.
type Graph struct {
	*simple.DirectedGraph
	ids   map[string]int64
	names []string
}

// Graph builds a directed graph with an edge from every record to each of its
// resolvable friends.
func (d *Directory) Graph() *Graph {
	g := &Graph{
		DirectedGraph: simple.NewDirectedGraph(),
		ids:           make(map[string]int64, d.Len()),
		names:         make([]string, 0, d.Len()),
	}
	for i, rec := range d.order {
		id := int64(i)
		g.ids[rec.Name] = id
		g.names = append(g.names, rec.Name)
		g.AddNode(simple.Node(id))
	}
	for _, rec := range d.order {
		from := g.ids[rec.Name]
		for _, friend := range rec.Friends {
			to, ok := g.ids[friend]
			if !ok || to == from {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(to)))
		}
	}
	return g
}

// NodeID returns the node ID of name.
func (g *Graph) NodeID(name string) (int64, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// NodeName returns the record name of a node ID.
func (g *Graph) NodeName(id int64) (string, bool) {
	if id < 0 || id >= int64(len(g.names)) {
		return "", false
	}
	return g.names[id], true
}

// ReachableLevels runs an unfiltered, unbounded breadth-first search from all
// best friends at once and returns the level of every reachable name, with
// the best friends at level 0.
func ReachableLevels(dir *Directory) map[string]int {
	g := dir.Graph()

	// A virtual root linked to every seed turns the multi-source search into
	// a single-source one; its children sit at depth 1.
	root := simple.Node(int64(len(g.names)))
	g.AddNode(root)
	for _, name := range dir.Best() {
		id, _ := g.NodeID(name)
		g.SetEdge(g.NewEdge(root, simple.Node(id)))
	}

	levels := make(map[string]int)
	var bfs traverse.BreadthFirst
	bfs.Walk(g, root, func(n graph.Node, depth int) bool {
		if name, ok := g.NodeName(n.ID()); ok {
			levels[name] = depth - 1
		}
		return false
	})
	return levels
}

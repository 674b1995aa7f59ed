package dependency

import (
	"sort"

	"oboro/internal/resolver"
)

// NodeID is the id of a plugin or bundle.
type NodeID string

// NodeKind categorises nodes by the entity kind they came from.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindStartPlugin
	KindLazyPlugin
	KindBundle
)

// String returns the document category of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindStartPlugin:
		return resolver.CategoryStart
	case KindLazyPlugin:
		return resolver.CategoryLazy
	case KindBundle:
		return resolver.CategoryBundle
	default:
		return "unknown"
	}
}

// Node is one entity together with its outgoing edges.
type Node struct {
	ID        NodeID
	Kind      NodeKind
	DependsOn []NodeID
	Members   []NodeID // bundle members, empty for plugins
}

// Graph is a very small helper to answer dependency queries.  It is *not*
// thread-safe by itself; callers must synchronise if they write concurrently.
type Graph struct {
	nodes map[NodeID]*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// FromConfig builds the graph of a resolved configuration.
func FromConfig(cfg *resolver.Config) *Graph {
	g := New()
	if cfg == nil {
		return g
	}
	for _, p := range cfg.StartPlugins {
		g.AddNode(Node{ID: NodeID(p.ID), Kind: KindStartPlugin})
	}
	for _, p := range cfg.LazyPlugins {
		g.AddNode(Node{
			ID:        NodeID(p.ID),
			Kind:      KindLazyPlugin,
			DependsOn: toIDs(p.Deps, p.DepBundles),
		})
	}
	for _, b := range cfg.Bundles {
		g.AddNode(Node{
			ID:        NodeID(b.ID),
			Kind:      KindBundle,
			DependsOn: toIDs(b.Deps, b.DepBundles),
			Members:   toIDs(b.Plugins),
		})
	}
	return g
}

func toIDs(lists ...[]string) []NodeID {
	var ids []NodeID
	for _, l := range lists {
		for _, s := range l {
			ids = append(ids, NodeID(s))
		}
	}
	return ids
}

// AddNode adds (or replaces) a node in the graph.
func (g *Graph) AddNode(n Node) {
	if g.nodes == nil {
		g.nodes = make(map[NodeID]*Node)
	}
	// Copy to avoid external mutations
	copied := n
	copied.DependsOn = append([]NodeID(nil), n.DependsOn...)
	copied.Members = append([]NodeID(nil), n.Members...)
	g.nodes[n.ID] = &copied
}

// Get returns a pointer to the stored node or nil if it does not exist.
func (g *Graph) Get(id NodeID) *Node {
	return g.nodes[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs returns every node id, sorted.
func (g *Graph) IDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Dependencies returns the immediate dependency IDs of the given node in
// declaration order.
func (g *Graph) Dependencies(id NodeID) []NodeID {
	if n, ok := g.nodes[id]; ok {
		// Return a copy to avoid callers modifying internal slice.
		depsCopy := make([]NodeID, len(n.DependsOn))
		copy(depsCopy, n.DependsOn)
		return depsCopy
	}
	return nil
}

// Dependents returns all node IDs that have a direct dependency on the given
// node, sorted.
func (g *Graph) Dependents(id NodeID) []NodeID {
	return g.collect(func(n *Node) []NodeID { return n.DependsOn }, id)
}

// Bundles returns the bundles that list the given node as a member, sorted.
func (g *Graph) Bundles(id NodeID) []NodeID {
	return g.collect(func(n *Node) []NodeID { return n.Members }, id)
}

func (g *Graph) collect(edges func(*Node) []NodeID, id NodeID) []NodeID {
	var res []NodeID
	for _, n := range g.nodes {
		for _, target := range edges(n) {
			if target == id {
				res = append(res, n.ID)
				break
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

package osm

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// connectionGraph is the undirected plant graph spanned by OS:Connection
// objects. Node IDs index into nodes.
type connectionGraph struct {
	g     *simple.UndirectedGraph
	ids   map[string]int64
	nodes []*object
}

func (d *Document) connectionGraph() *connectionGraph {
	cg := &connectionGraph{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[string]int64),
	}

	l := layoutOf(domain.TypeConnection)
	src, dst := l.fieldIndex("Source Object"), l.fieldIndex("Target Object")
	for _, c := range d.objects {
		if c.typ != domain.TypeConnection {
			continue
		}
		a, okA := d.lookup(c.get(src))
		b, okB := d.lookup(c.get(dst))
		if !okA || !okB || a == b {
			continue
		}
		cg.g.SetEdge(cg.g.NewEdge(cg.node(a), cg.node(b)))
	}
	return cg
}

func (cg *connectionGraph) node(o *object) graph.Node {
	id, ok := cg.ids[o.Handle()]
	if !ok {
		id = int64(len(cg.nodes))
		cg.ids[o.Handle()] = id
		cg.nodes = append(cg.nodes, o)
	}
	return simple.Node(id)
}

// Connected walks the connection graph breadth first from obj and returns
// the nearest object of type typ.
func (d *Document) Connected(obj driven.ModelObject, typ string) (driven.ModelObject, bool) {
	start, err := d.own(obj)
	if err != nil {
		return nil, false
	}

	cg := d.connectionGraph()
	id, ok := cg.ids[start.Handle()]
	if !ok {
		return nil, false
	}

	var bf traverse.BreadthFirst
	found := bf.Walk(cg.g, simple.Node(id), func(n graph.Node, _ int) bool {
		o := cg.nodes[n.ID()]
		return o != start && o.typ == typ
	})
	if found == nil {
		return nil, false
	}
	return cg.nodes[found.ID()], true
}

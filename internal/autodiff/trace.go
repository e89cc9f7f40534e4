package autodiff

// Trace walks the subgraph reachable from root and returns every node it
// finds plus the predecessor edges between them, without mutating anything.
// Each edge is a (predecessor, successor) pair. Nodes appear in depth-first
// discovery order starting at root, so the output is deterministic for a
// given graph.
//
// This is the read-only surface for visualization and debugging tools:
// combine it with Data, Grad, Op and Operands to render or inspect a graph.
func Trace(root Value) (nodes []Value, edges [][2]Value) {
	g := root.graph
	visited := make([]bool, root.id+1)
	stack := []int32{root.id}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		nodes = append(nodes, Value{graph: g, id: id})

		n := &g.nodes[id]
		if n.a >= 0 {
			edges = append(edges, [2]Value{{graph: g, id: n.a}, {graph: g, id: id}})
			stack = append(stack, n.a)
		}
		if n.b >= 0 {
			edges = append(edges, [2]Value{{graph: g, id: n.b}, {graph: g, id: id}})
			stack = append(stack, n.b)
		}
	}

	return nodes, edges
}

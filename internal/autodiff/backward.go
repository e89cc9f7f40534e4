package autodiff

// Backward computes gradients of v with respect to every node reachable from
// it through predecessor edges, accumulating the results into each node's
// persistent gradient.
//
// Algorithm:
//  1. Build a topological order of the reachable subgraph (predecessors
//     before successors) with an iterative depth-first search.
//  2. Seed a scratch gradient buffer with dv/dv = 1 at v and consume the
//     order in reverse (terminal first, leaves last), so a node's gradient
//     for this pass is complete — every successor has contributed its
//     share — before the node distributes it further upstream.
//  3. Add each reachable node's scratch gradient onto its persistent one.
//
// Because every pass propagates from a fresh unit seed and only then
// accumulates, repeated calls add independent contributions: backward from
// two terminals sums their exact gradients, and calling Backward twice
// doubles every gradient. Callers must ZeroGrad between independent
// optimization steps.
//
// Backward on a bare leaf is valid: its own gradient gains 1 and nothing
// propagates.
func (v Value) Backward() {
	g := v.graph
	order := g.topoSort(v.id)

	// Predecessors always precede their successors in the arena, so the
	// reachable subgraph lives entirely in the prefix [0, v.id].
	grads := make([]float64, v.id+1)
	grads[v.id] = 1.0

	// Walk in reverse topological order: terminal → leaves.
	for i := len(order) - 1; i >= 0; i-- {
		g.backprop(order[i], grads)
	}

	for _, id := range order {
		g.nodes[id].grad += grads[id]
	}
}

// topoSort returns the nodes reachable from root ordered so that every node
// appears after all of its predecessors.
//
// The traversal uses an explicit work stack instead of recursion so that
// depth is bounded by heap, not goroutine stack; deep chains (many-layer
// networks) would otherwise risk exhausting the call stack. Each node is
// pushed twice: once to expand its predecessors, once (after they are done)
// to emit it.
func (g *Graph) topoSort(root int32) []int32 {
	type frame struct {
		id       int32
		expanded bool
	}

	order := make([]int32, 0, root+1)
	visited := make([]bool, root+1)
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			order = append(order, top.id)
			continue
		}
		if visited[top.id] {
			continue
		}
		visited[top.id] = true

		stack = append(stack, frame{id: top.id, expanded: true})

		n := &g.nodes[top.id]
		if n.a >= 0 && !visited[n.a] {
			stack = append(stack, frame{id: n.a})
		}
		if n.b >= 0 && !visited[n.b] {
			stack = append(stack, frame{id: n.b})
		}
	}

	return order
}

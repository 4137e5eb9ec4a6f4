package bodygraph

// Graph is the connectivity snapshot of a chart: nodes are defined centers,
// edges are completed channels between them. It is immutable once built.
type Graph struct {
	defined [CenterCount]bool
	adj     [CenterCount][]Center
}

// NewGraph builds the connectivity graph for the given center states.
func NewGraph(cs Centers) *Graph {
	g := &Graph{}
	for _, c := range AllCenters {
		g.defined[c] = cs[c].Defined
	}
	for _, ch := range Channels {
		a, b := ch.Centers[0], ch.Centers[1]
		if !g.defined[a] || !g.defined[b] {
			continue
		}
		if !cs[a].HasChannel(ch.Key()) {
			continue
		}
		g.adj[a] = appendUnique(g.adj[a], b)
		g.adj[b] = appendUnique(g.adj[b], a)
	}
	return g
}

func appendUnique(list []Center, c Center) []Center {
	for _, x := range list {
		if x == c {
			return list
		}
	}
	return append(list, c)
}

// Reachable reports whether any of targets can be reached from `from` by a
// breadth-first walk over completed channels. An undefined starting center
// reaches nothing.
func (g *Graph) Reachable(from Center, targets ...Center) bool {
	if !g.defined[from] {
		return false
	}
	want := [CenterCount]bool{}
	for _, t := range targets {
		want[t] = true
	}

	var seen [CenterCount]bool
	seen[from] = true
	queue := []Center{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if want[cur] {
			return true
		}
		for _, next := range g.adj[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// Components counts the connected components among defined centers.
func (g *Graph) Components() int {
	seen := [CenterCount]bool{}
	count := 0
	for _, c := range AllCenters {
		if !g.defined[c] || seen[c] {
			continue
		}
		count++
		stack := []Center{c}
		seen[c] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range g.adj[cur] {
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
	return count
}

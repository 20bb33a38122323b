package config

// Compact rebuilds the arena with only the nodes reachable from the root,
// keeping child order, and returns how many tombstones were dropped.
// Every Handle obtained before the call is invalid afterwards; Root() and
// fresh lookups must be used instead.
func (s *Store) Compact() int {
	if s == nil || len(s.nodes) == 0 {
		return 0
	}
	before := len(s.nodes)

	out := make([]node, 1, s.Stats().Live)
	out[0] = s.nodes[0]
	out[0].self = 0

	// Breadth-first: each queued entry is (old index, new index).
	type pending struct{ from, to uint32 }
	queue := []pending{{0, 0}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		var prev uint32
		for c := s.nodes[p.from].child; c != none; c = s.nodes[c].sibling {
			idx := uint32(len(out))
			n := s.nodes[c]
			n.self = idx
			n.sibling = none
			out = append(out, n)

			if prev == none {
				out[p.to].child = idx
			} else {
				out[prev].sibling = idx
			}
			prev = idx
			queue = append(queue, pending{from: c, to: idx})
		}
		if prev == none {
			out[p.to].child = none
		}
	}

	s.nodes = out
	return before - len(out)
}

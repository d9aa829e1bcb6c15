package inference

import "github.com/bayeshint/bnrec/factor"

// potential is a flat, dense table over the Cartesian product of a set of
// nodes' outcomes. Like factor.Node's CPT, the first listed node varies
// fastest; nodes is always kept sorted ascending by node index so that two
// potentials built from the same node set are always directly comparable
// element-for-element.
type potential struct {
	nodes []int
	cards []int
	data  []float64
}

// newOnesPotential returns a potential over nodes (already sorted
// ascending) with every entry set to 1.
func newOnesPotential(nodes []int, cardOf func(int) int) *potential {
	cards := make([]int, len(nodes))
	size := 1
	for i, n := range nodes {
		cards[i] = cardOf(n)
		size *= cards[i]
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = 1
	}
	return &potential{nodes: nodes, cards: cards, data: data}
}

// clone returns a deep copy.
func (p *potential) clone() *potential {
	nodes := make([]int, len(p.nodes))
	copy(nodes, p.nodes)
	cards := make([]int, len(p.cards))
	copy(cards, p.cards)
	data := make([]float64, len(p.data))
	copy(data, p.data)
	return &potential{nodes: nodes, cards: cards, data: data}
}

// coords decodes a flat index into per-node coordinates, in p.nodes order.
func (p *potential) coords(flat int) []int {
	out := make([]int, len(p.cards))
	for i, c := range p.cards {
		out[i] = flat % c
		flat /= c
	}
	return out
}

// posOf returns the position of node within p.nodes, or -1.
func (p *potential) posOf(node int) int {
	for i, n := range p.nodes {
		if n == node {
			return i
		}
	}
	return -1
}

// multiplyCPT multiplies nd's CPT into p in place, broadcasting over any
// dimensions of p not among {nd} ∪ parents(nd). p must contain nd's index
// and every one of nd's parents' indices.
func (p *potential) multiplyCPT(nd *factor.Node) {
	selfPos := p.posOf(nd.Index())
	parents := nd.Parents()
	parentPos := make([]int, len(parents))
	for i, par := range parents {
		parentPos[i] = p.posOf(par.Index())
	}

	for flat := range p.data {
		coords := p.coords(flat)
		parentIdxs := make([]int, len(parentPos))
		for i, pos := range parentPos {
			parentIdxs[i] = coords[pos]
		}
		p.data[flat] *= nd.ProbabilityAt(coords[selfPos], parentIdxs)
	}
}

// applyEvidence zeros every entry whose coordinate for an evidenced node
// disagrees with the fixed outcome. evidence maps node index -> outcome
// index; nodes absent from the map are unconstrained.
func (p *potential) applyEvidence(evidence map[int]int) {
	for flat := range p.data {
		coords := p.coords(flat)
		for i, n := range p.nodes {
			if want, ok := evidence[n]; ok && coords[i] != want {
				p.data[flat] = 0
				break
			}
		}
	}
}

// marginalizeTo sums p down to the given keep set (a sorted ascending
// subset of p.nodes), returning a new potential over exactly those nodes.
func (p *potential) marginalizeTo(keep []int) *potential {
	keepPos := make([]int, len(keep))
	for i, n := range keep {
		keepPos[i] = p.posOf(n)
	}
	cards := make([]int, len(keep))
	for i, pos := range keepPos {
		cards[i] = p.cards[pos]
	}
	size := 1
	for _, c := range cards {
		size *= c
	}
	out := &potential{nodes: append([]int(nil), keep...), cards: cards, data: make([]float64, size)}

	for flat, v := range p.data {
		if v == 0 {
			continue
		}
		coords := p.coords(flat)
		outFlat := 0
		stride := 1
		for i, pos := range keepPos {
			outFlat += stride * coords[pos]
			stride *= cards[i]
		}
		out.data[outFlat] += v
	}

	return out
}

// marginalizeToSingle is the common case of marginalizeTo([]int{node}).
func (p *potential) marginalizeToSingle(node int) *potential {
	return p.marginalizeTo([]int{node})
}

// multiplyBroadcast multiplies p in place by ratio, whose nodes are a
// subset of p.nodes (typically a tree-edge separator).
func (p *potential) multiplyBroadcast(ratio *potential) {
	pos := make([]int, len(ratio.nodes))
	for i, n := range ratio.nodes {
		pos[i] = p.posOf(n)
	}

	for flat := range p.data {
		coords := p.coords(flat)
		ratioFlat := 0
		stride := 1
		for i, rpos := range pos {
			ratioFlat += stride * coords[rpos]
			stride *= ratio.cards[i]
		}
		p.data[flat] *= ratio.data[ratioFlat]
	}
}

// safeDivideBy returns a new potential, same shape as p and other, with
// p's entries divided element-wise by other's; 0/0 is treated as 0 rather
// than NaN, matching the "no message yet" identity of an all-ones
// separator that later becomes all-zero under contradictory evidence.
func (p *potential) safeDivideBy(other *potential) *potential {
	out := p.clone()
	for i, v := range other.data {
		if v == 0 {
			out.data[i] = 0
			continue
		}
		out.data[i] = p.data[i] / v
	}
	return out
}

// sum returns the total mass across every entry.
func (p *potential) sum() float64 {
	total := 0.0
	for _, v := range p.data {
		total += v
	}
	return total
}

package jtree

import "strconv"

// maximalCliques deduplicates identical candidate cliques (keeping the
// first occurrence) and then discards any candidate that is a strict subset
// of another survivor, preserving the relative elimination order of
// whatever remains. The result's positional index becomes each clique's
// stable ID.
func maximalCliques(candidates [][]int) [][]int {
	seen := make(map[string]bool, len(candidates))
	uniq := make([][]int, 0, len(candidates))
	for _, c := range candidates {
		key := cliqueKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, c)
	}

	out := make([][]int, 0, len(uniq))
	for i, c := range uniq {
		subsumed := false
		for j, o := range uniq {
			if i == j {
				continue
			}
			if isSubset(c, o) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			out = append(out, c)
		}
	}

	return out
}

// isSubset reports whether every element of a appears in b. a and b are
// both sorted ascending integer slices.
func isSubset(a, b []int) bool {
	if len(a) > len(b) {
		return false
	}
	bi := 0
	for _, v := range a {
		for bi < len(b) && b[bi] < v {
			bi++
		}
		if bi >= len(b) || b[bi] != v {
			return false
		}
		bi++
	}

	return true
}

// cliqueKey renders a sorted clique as a stable map key.
func cliqueKey(c []int) string {
	buf := make([]byte, 0, len(c)*4)
	for i, v := range c {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// intersect returns the sorted intersection of two sorted integer slices.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

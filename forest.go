package blossom

// forest is the alternating forest of one augmenting-path search. It maps
// every discovered vertex to its path from the exposed root of its tree.
// A path of odd length ends on an even (root-side) vertex, a path of even
// length on an odd (matched-side) vertex.
//
// A forest lives for exactly one findAugmentingPath call.
type forest struct {
	paths map[Vertex][]Vertex
}

// newForest seeds one singleton tree per exposed vertex.
func newForest(roots []Vertex) *forest {
	f := &forest{paths: make(map[Vertex][]Vertex, 2*len(roots))}
	for _, r := range roots {
		f.paths[r] = []Vertex{r}
	}

	return f
}

// depth returns the length of v's root path, or false if v is unseen.
func (f *forest) depth(v Vertex) (int, bool) {
	p, ok := f.paths[v]

	return len(p), ok
}

// path returns v's root path. The slice is shared; callers must not modify it.
func (f *forest) path(v Vertex) []Vertex { return f.paths[v] }

// grow attaches the matched pair (w, x) below v: w at odd depth through an
// unmatched edge, x at even depth through the matched edge w-x.
func (f *forest) grow(v, w, x Vertex) {
	base := f.paths[v]
	pw := make([]Vertex, len(base)+1)
	copy(pw, base)
	pw[len(base)] = w
	px := make([]Vertex, len(pw)+1)
	copy(px, pw)
	px[len(pw)] = x
	f.paths[w] = pw
	f.paths[x] = px
}

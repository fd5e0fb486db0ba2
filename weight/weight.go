// Package weight implements the lexicographically ordered 3-vector used to
// rank candidate conversion chains by qualitatively distinct costs, rather
// than by a single fudge-factor-tuned scalar.
//
// This generalizes the scalar int64 edge weight the teacher corpus uses for
// its own Dijkstra (github.com/katalvlaran/lvlath/dijkstra, core.Edge.Weight):
// a single scalar cannot express "minimize FontForge invocations first, then
// other tool invocations, then pure copies" without collapsing the three
// concerns into one tuned number. A 3-vector compared lexicographically
// keeps them distinct and exact.
package weight

// Vector is a 3-component cost, compared lexicographically: first by A, then
// B, then C. Addition is componentwise. The zero value is the identity for
// Add and the starting distance for a shortest-paths search.
type Vector struct {
	A, B, C int64
}

// Zero returns the identity vector (0, 0, 0).
func Zero() Vector {
	return Vector{}
}

// Add returns the componentwise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{A: v.A + o.A, B: v.B + o.B, C: v.C + o.C}
}

// Less reports whether v sorts strictly before o under lexicographic order:
// v.A < o.A, or (v.A == o.A and v.B < o.B), or (v.A == o.A and v.B == o.B and
// v.C < o.C).
func (v Vector) Less(o Vector) bool {
	if v.A != o.A {
		return v.A < o.A
	}
	if v.B != o.B {
		return v.B < o.B
	}
	return v.C < o.C
}

// Package audio implements the grouped mixer: tracked streaming
// sources, routing groups, and the output-device callback (spec §4.4).
package audio

// Matrix2x2 is a 2×2 left/right routing matrix: out[L] =
// in[L]*M[0][0] + in[R]*M[0][1]; out[R] = in[L]*M[1][0] +
// in[R]*M[1][1].
type Matrix2x2 [2][2]float32

// IdentityMatrix passes left through to left and right to right.
func IdentityMatrix() Matrix2x2 {
	return Matrix2x2{{1, 0}, {0, 1}}
}

// Group is one audio mix group: a routing matrix and a scalar gain
// applied after routing (spec §3). Group 0 is the default.
type Group struct {
	Mix  Matrix2x2
	Gain float32
}

// NumGroups is the fixed number of mix groups the context holds (spec
// §4.4: "at least 8").
const NumGroups = 8

func newGroups() [NumGroups]Group {
	var groups [NumGroups]Group
	for i := range groups {
		groups[i] = Group{Mix: IdentityMatrix(), Gain: 1}
	}
	return groups
}

package roadplan

import "log"

// invariant panics with a prefixed message when cond is false. Used only
// at the points the specification calls out as bugs — malformed pavement
// outlines or end-cap rectangles built from already-validated inputs —
// never for ordinary user-input failures, which are silent drops instead.
func invariant(cond bool, msg string) {
	if !cond {
		panic("roadplan: invariant violated: " + msg)
	}
}

// logDegradation records a clipper failure during pavement intersection or
// union. The erring pair contributes no shape; compilation proceeds.
func logDegradation(stage string, err error) {
	log.Printf("roadplan: %s: %v", stage, err)
}

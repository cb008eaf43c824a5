package geode

import (
	"fmt"
	"strings"
)

// Resources holds one quantity per kind, indexed by Kind.
type Resources [NumKind]int

// Unit returns the resources with a single unit of kind k.
func Unit(k Kind) Resources {
	var r Resources
	r[k] = 1
	return r
}

// Get returns the quantity of kind k.
func (r Resources) Get(k Kind) int { return r[k] }

// Add returns r + o.
func (r Resources) Add(o Resources) Resources {
	for i := range r {
		r[i] += o[i]
	}
	return r
}

// DiffSafe returns r - o with every quantity clamped at zero.
func (r Resources) DiffSafe(o Resources) Resources {
	for i := range r {
		r[i] = max(r[i]-o[i], 0)
	}
	return r
}

// Mul returns r with every quantity multiplied by n.
func (r Resources) Mul(n int) Resources {
	for i := range r {
		r[i] *= n
	}
	return r
}

// Div returns r with every quantity divided by n (truncated). n must not be 0.
func (r Resources) Div(n int) Resources {
	for i := range r {
		r[i] /= n
	}
	return r
}

// GreaterEq reports whether every quantity of r is >= the one of o.
func (r Resources) GreaterEq(o Resources) bool {
	for i := range r {
		if r[i] < o[i] {
			return false
		}
	}
	return true
}

// LessEq reports whether every quantity of r is <= the one of o.
func (r Resources) LessEq(o Resources) bool { return o.GreaterEq(r) }

// Equal reports whether r and o hold the same quantities.
func (r Resources) Equal(o Resources) bool { return r == o }

func (r Resources) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, n := range r {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", Kind(i), n)
	}
	sb.WriteByte('}')
	return sb.String()
}

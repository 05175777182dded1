package predicates

import (
	"strings"

	"github.com/specialistvlad/automata/internal/registry"
	"github.com/specialistvlad/automata/internal/verifier"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Mod4Equals1 holds for integers congruent to 1 modulo 4.
func Mod4Equals1(n uint64) bool {
	return n%4 == 1
}

// ThirdFromLastIsOne holds when the binary form has at least three digits
// and the third-from-last one is 1.
func ThirdFromLastIsOne(n uint64) bool {
	bits := verifier.Binary(n)
	return len(bits) >= 3 && bits[len(bits)-3] == '1'
}

// AlternatingBits holds when no two adjacent binary digits are equal.
func AlternatingBits(n uint64) bool {
	bits := verifier.Binary(n)
	for i := 1; i < len(bits); i++ {
		if bits[i] == bits[i-1] {
			return false
		}
	}
	return true
}

// EndsWith011 holds when the binary form ends in "011".
func EndsWith011(n uint64) bool {
	return strings.HasSuffix(verifier.Binary(n), "011")
}

// Register registers the predicates with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPredicate("mod4_equals_1", &registry.RegisteredPredicate{
		Description: "n mod 4 = 1",
		Fn:          Mod4Equals1,
	})
	r.RegisterPredicate("third_from_last_is_one", &registry.RegisteredPredicate{
		Description: "at least three bits and bits[-3] = 1",
		Fn:          ThirdFromLastIsOne,
	})
	r.RegisterPredicate("alternating_bits", &registry.RegisteredPredicate{
		Description: "no two adjacent bits are equal",
		Fn:          AlternatingBits,
	})
	r.RegisterPredicate("ends_with_011", &registry.RegisteredPredicate{
		Description: "binary form ends in 011",
		Fn:          EndsWith011,
	})
}

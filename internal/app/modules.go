package app

import (
	"github.com/specialistvlad/automata/internal/registry"
	"github.com/specialistvlad/automata/modules/predicates"
)

// coreModules is the definitive list of all predicate modules that are
// compiled into the binary.
var coreModules = []registry.Module{
	&predicates.Module{},
}

package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders a definition as an `automaton` block that Load accepts.
// Single targets are written as strings and multiple targets as lists.
func Encode(kind config.Kind, def automaton.Definition) []byte {
	f := hclwrite.NewEmptyFile()
	block := f.Body().AppendNewBlock("automaton", []string{def.Name})
	body := block.Body()
	body.SetAttributeValue("kind", cty.StringVal(string(kind)))
	body.SetAttributeValue("initial", cty.StringVal(def.Initial))

	for _, st := range def.States {
		body.AppendNewline()
		sb := body.AppendNewBlock("state", []string{st.ID}).Body()
		if st.Final {
			sb.SetAttributeValue("final", cty.True)
		}
		if len(st.Transitions) == 0 {
			continue
		}
		on := make(map[string]cty.Value, len(st.Transitions))
		for sym, targets := range st.Transitions {
			key := sym.String()
			if sym == alphabet.Epsilon {
				key = "eps"
			}
			if len(targets) == 1 {
				on[key] = cty.StringVal(targets[0])
				continue
			}
			vals := make([]cty.Value, len(targets))
			for i, t := range targets {
				vals[i] = cty.StringVal(t)
			}
			on[key] = cty.TupleVal(vals)
		}
		sb.SetAttributeValue("on", cty.ObjectVal(on))
	}
	return f.Bytes()
}

// Encode implements config.Encoder.
func (l *Loader) Encode(kind config.Kind, def automaton.Definition) []byte {
	return Encode(kind, def)
}

// Ext implements config.Encoder.
func (l *Loader) Ext() string { return ".hcl" }

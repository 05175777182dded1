package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/stategraph"
	"github.com/specialistvlad/automata/internal/verifier"
)

// MaxFailures caps how many discrepancies Report lists.
const MaxFailures = 10

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Table writes one row per state of a, in state order. The first column
// marks the initial state with "->" and accepting states with "*". An
// epsilon column is added only when some state has epsilon transitions.
func Table(w io.Writer, a automaton.Automaton) error {
	g := a.Graph()
	symbols := append([]alphabet.Symbol{}, alphabet.Binary...)
	if g.EdgeCount(alphabet.Epsilon) > 0 {
		symbols = append(symbols, alphabet.Epsilon)
	}

	tw := newTabWriter(w)
	header := []string{"", "STATE"}
	for _, sym := range symbols {
		header = append(header, sym.String())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i := 0; i < a.Len(); i++ {
		id := stategraph.StateID(i)
		row := []string{marker(a, id), a.StateName(id)}
		for _, sym := range symbols {
			row = append(row, cell(g, a.TransitionsFor(id, sym)))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func marker(a automaton.Automaton, id stategraph.StateID) string {
	var m string
	if id == a.Initial() {
		m = "->"
	}
	if a.IsFinal(id) {
		m += "*"
	}
	return m
}

func cell(g *stategraph.Graph, targets stategraph.Set) string {
	switch targets.Len() {
	case 0:
		return "-"
	case 1:
		return g.Name(targets[0])
	default:
		return "{" + strings.Join(g.Names(targets), ",") + "}"
	}
}

// Report writes a one-line summary of r followed by up to MaxFailures
// discrepancies.
func Report(w io.Writer, r *verifier.Report) error {
	status := "PASS"
	if !r.OK() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s %s: %d checked in [%d, %d), %d accepted, %d failures (%s)\n",
		status, r.Name, r.Checked, r.From, r.To, r.Accepted, len(r.Failures), r.Elapsed)
	if r.OK() {
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "N\tINPUT\tEXPECTED\tGOT")
	for i, d := range r.Failures {
		if i == MaxFailures {
			break
		}
		fmt.Fprintf(tw, "%d\t%s\t%t\t%t\n", d.N, d.Input, d.Expected, d.Got)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if more := len(r.Failures) - MaxFailures; more > 0 {
		fmt.Fprintf(w, "... and %d more\n", more)
	}
	return nil
}

package eventfsm

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
)

// States returns the registered state ids ordered by their printed form
func (d *Definition[S, E]) States() []S {
	ids := maps.Keys(d.states)
	slices.SortFunc(ids, func(a, b S) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return ids
}

// Transitions returns the transition table ordered by source state, then event
func (d *Definition[S, E]) Transitions() []Transition[S, E] {
	keys := maps.Keys(d.transitions)
	out := make([]Transition[S, E], 0, len(keys))
	for _, k := range keys {
		out = append(out, Transition[S, E]{From: k.from, Event: k.event, To: d.transitions[k]})
	}
	slices.SortFunc(out, func(a, b Transition[S, E]) int {
		if c := strings.Compare(fmt.Sprint(a.From), fmt.Sprint(b.From)); c != 0 {
			return c
		}
		return strings.Compare(fmt.Sprint(a.Event), fmt.Sprint(b.Event))
	})
	return out
}

// Describe writes a plain-text dump of the model: every state with its
// actions, then every transition
func (d *Definition[S, E]) Describe(w io.Writer) error {
	var b strings.Builder

	states := d.States()
	fmt.Fprintf(&b, "states (%d):\n", len(states))
	for _, id := range states {
		s := d.states[id]
		var actions []string
		if s.OnEnter != nil {
			actions = append(actions, "entry")
		}
		if s.OnExit != nil {
			actions = append(actions, "exit")
		}
		if len(actions) == 0 {
			fmt.Fprintf(&b, "  %v\n", id)
			continue
		}
		fmt.Fprintf(&b, "  %v [%s]\n", id, strings.Join(actions, ", "))
	}

	transitions := d.Transitions()
	fmt.Fprintf(&b, "transitions (%d):\n", len(transitions))
	for _, t := range transitions {
		fmt.Fprintf(&b, "  %v --%v--> %v\n", t.From, t.Event, t.To)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMermaid writes the transition table as a Mermaid stateDiagram-v2
func (d *Definition[S, E]) WriteMermaid(w io.Writer) error {
	var b strings.Builder

	b.WriteString("stateDiagram-v2\n")
	for _, id := range d.States() {
		name := fmt.Sprint(id)
		if sanitized := mermaidID(name); sanitized != name {
			fmt.Fprintf(&b, "    %s : %s\n", sanitized, name)
		}
	}
	for _, t := range d.Transitions() {
		fmt.Fprintf(&b, "    %s --> %s : %v\n", mermaidID(fmt.Sprint(t.From)), mermaidID(fmt.Sprint(t.To)), t.Event)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// mermaidID replaces characters Mermaid does not accept in state ids
func mermaidID(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, name)
}

func sortErrors(errs []error) {
	slices.SortFunc(errs, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
}

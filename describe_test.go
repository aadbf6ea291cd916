package eventfsm

import (
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	def := NewDefinition[testState, testEvent]().
		State(stateB, WithOnEnterFunc(func(*Context[testState, testEvent]) {})).
		State(stateA,
			WithOnEnterFunc(func(*Context[testState, testEvent]) {}),
			WithOnExitFunc(func(*Context[testState, testEvent]) {}),
		).
		State(stateC).
		Transition(stateB, evBack, stateA).
		Transition(stateA, evGo, stateB).
		Transition(stateA, evBack, stateC)

	var b strings.Builder
	if err := def.Describe(&b); err != nil {
		t.Fatalf("describe failed: %v", err)
	}

	want := `states (3):
  a [entry, exit]
  b [entry]
  c
transitions (3):
  a --back--> c
  a --go--> b
  b --back--> a
`
	if b.String() != want {
		t.Errorf("unexpected description:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteMermaid(t *testing.T) {
	def := NewDefinition[testState, testEvent]().
		State(stateA).
		State("b-2").
		Transition(stateA, evGo, "b-2")

	var b strings.Builder
	if err := def.WriteMermaid(&b); err != nil {
		t.Fatalf("mermaid failed: %v", err)
	}

	want := `stateDiagram-v2
    b_2 : b-2
    a --> b_2 : go
`
	if b.String() != want {
		t.Errorf("unexpected diagram:\n%s\nwant:\n%s", b.String(), want)
	}
}

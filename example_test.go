package eventfsm_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/librescoot/eventfsm"
)

type turnstileState int

const (
	noState turnstileState = iota
	locked
	unlocked
)

func (s turnstileState) String() string {
	switch s {
	case locked:
		return "LOCKED"
	case unlocked:
		return "UNLOCKED"
	}
	return "S_NO"
}

type turnstileEvent int

const (
	noEvent turnstileEvent = iota
	coin
	pass
)

func (e turnstileEvent) String() string {
	switch e {
	case coin:
		return "E_COIN"
	case pass:
		return "E_PASS"
	}
	return "E_NO"
}

// Example: turnstile from Robert C. Martin's UML FSM tutorial
func Example_turnstile() {
	type ctx = eventfsm.Context[turnstileState, turnstileEvent]

	def := eventfsm.NewDefinition[turnstileState, turnstileEvent]().
		State(locked,
			eventfsm.WithOnEnterFunc(func(c *ctx) {
				if c.Event() == pass && c.From() == locked {
					fmt.Println("alarm")
				}
				fmt.Println("locked")
			}),
		).
		State(unlocked,
			eventfsm.WithOnEnterFunc(func(c *ctx) {
				if c.Event() == coin && c.From() == unlocked {
					fmt.Println("thank you")
				}
				fmt.Println("unlocked")
			}),
		).
		Transition(locked, coin, unlocked).
		Transition(locked, pass, locked).
		Transition(unlocked, coin, unlocked).
		Transition(unlocked, pass, locked)

	m, err := def.Build(
		eventfsm.WithLogger[turnstileState, turnstileEvent](slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	m.Run(locked, coin)
	m.Push(coin)
	m.Push(pass)
	m.Push(pass)
	fmt.Printf("State: %s\n", m.CurrentState())

	// Output:
	// unlocked
	// thank you
	// unlocked
	// locked
	// alarm
	// locked
	// State: LOCKED
}

// Example: an entry action drives the machine by pushing the next event
func Example_followUpEvent() {
	const (
		stateA = "A"
		stateB = "B"
		evE1   = "E1"
		evX    = "X"
	)
	type ctx = eventfsm.Context[string, string]

	def := eventfsm.NewDefinition[string, string]().
		State(stateA).
		State(stateB,
			eventfsm.WithOnEnterFunc(func(c *ctx) {
				fmt.Printf("entered %s, pushing %s\n", c.CurrentState(), evX)
				c.Push(evX)
			}),
		).
		Transition(stateA, evE1, stateB).
		Transition(stateB, evX, stateA)

	m, _ := def.Build(
		eventfsm.WithLogger[string, string](slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))),
		eventfsm.WithStateChangeCallback(func(from, to, event string) {
			fmt.Printf("%s --%s--> %s\n", from, event, to)
		}),
	)

	m.Run(stateA, evE1)
	fmt.Printf("State: %s\n", m.CurrentState())

	// Output:
	// entered B, pushing X
	// A --E1--> B
	// B --X--> A
	// State: A
}

// Example: dump the model, as a quick check of a freshly wired table
func ExampleDefinition_Describe() {
	def := eventfsm.NewDefinition[turnstileState, turnstileEvent]().
		State(locked).
		State(unlocked).
		Transition(locked, coin, unlocked).
		Transition(unlocked, pass, locked)

	def.Describe(os.Stdout)

	// Output:
	// states (2):
	//   LOCKED
	//   UNLOCKED
	// transitions (2):
	//   LOCKED --E_COIN--> UNLOCKED
	//   UNLOCKED --E_PASS--> LOCKED
}

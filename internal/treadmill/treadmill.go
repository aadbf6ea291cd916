// Package treadmill is the console treadmill simulation driven by eventfsm.
// Every entry action renders a menu, blocks on a key and pushes the matching
// event; the quit key pushes nothing, so the machine idles and Run returns.
package treadmill

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/librescoot/eventfsm"
)

// Display shows a screen of text
type Display interface {
	Show(title string, lines ...string)
}

// Keyboard blocks until a key is pressed
type Keyboard interface {
	ReadKey() (rune, error)
}

// Alarm signals an emergency to the user
type Alarm interface {
	Sound()
}

// QuitKey ends the simulation from any menu
const QuitKey = 'q'

type (
	// Machine is the engine instantiated for the treadmill
	Machine = eventfsm.Machine[State, Event]
	// Context is passed to the treadmill's actions
	Context = eventfsm.Context[State, Event]
	// MachineOption configures the treadmill's machine
	MachineOption = eventfsm.MachineOption[State, Event]
)

// Treadmill owns the simulated hardware and the belt statistics
type Treadmill struct {
	display  Display
	keyboard Keyboard
	alarm    Alarm
	now      func() time.Time

	stats     Stats
	runningAt time.Time
}

// Option configures a Treadmill
type Option func(*Treadmill)

// WithAlarm sets the alarm sounded on emergency
func WithAlarm(a Alarm) Option {
	return func(t *Treadmill) {
		t.alarm = a
	}
}

// WithClock replaces time.Now for distance keeping
func WithClock(now func() time.Time) Option {
	return func(t *Treadmill) {
		t.now = now
	}
}

// New creates a treadmill reading keys from keyboard and rendering on display
func New(display Display, keyboard Keyboard, opts ...Option) *Treadmill {
	t := &Treadmill{
		display:  display,
		keyboard: keyboard,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Stats returns a snapshot of the belt statistics
func (t *Treadmill) Stats() Stats {
	return t.stats
}

// Definition registers the treadmill's states and transitions
func (t *Treadmill) Definition() *eventfsm.Definition[State, Event] {
	def := eventfsm.NewDefinition[State, Event]().
		State(StateStart).
		State(StateInit, eventfsm.WithOnEnterFunc(t.onInitEntry)).
		State(StateStandby, eventfsm.WithOnEnterFunc(t.onStandbyEntry)).
		State(StateDefault,
			eventfsm.WithOnEnterFunc(t.onDefaultEntry),
			eventfsm.WithOnExitFunc(t.onDefaultExit),
		).
		State(StateDiagnostics, eventfsm.WithOnEnterFunc(t.onDiagnosticsEntry)).
		State(StateAlterConfig, eventfsm.WithOnEnterFunc(t.onAlterConfigEntry)).
		State(StateEmergency, eventfsm.WithOnEnterFunc(t.onEmergencyEntry)).
		State(StatePause, eventfsm.WithOnEnterFunc(t.onPauseEntry))

	def.Transition(StateStart, EventInit, StateInit).
		Transition(StateInit, EventTreadmill, StateStandby).
		Transition(StateStandby, EventRunningStart, StateDefault).
		Transition(StateDefault, EventRunningStop, StateStandby).
		Transition(StateDefault, EventPause, StatePause).
		Transition(StatePause, EventResume, StateDefault).
		Transition(StatePause, EventRunningStop, StateStandby).
		Transition(StateStandby, EventDiagnosticsStart, StateDiagnostics).
		Transition(StateDiagnostics, EventDiagnosticsStop, StateStandby).
		Transition(StateStandby, EventConfigChange, StateAlterConfig).
		Transition(StateAlterConfig, EventConfigDone, StateStandby).
		Transition(StateEmergency, EventEmergencyStop, StateStandby)

	for _, from := range []State{StateStandby, StateDefault, StatePause, StateDiagnostics, StateAlterConfig} {
		def.Transition(from, EventEmergencyStart, StateEmergency)
	}

	return def
}

// Machine builds the engine for this treadmill
func (t *Treadmill) Machine(opts ...MachineOption) (*Machine, error) {
	m, err := t.Definition().Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("treadmill definition: %w", err)
	}
	return m, nil
}

// Run builds the machine and runs it from S_START until the user quits
func (t *Treadmill) Run(opts ...MachineOption) error {
	m, err := t.Machine(opts...)
	if err != nil {
		return err
	}
	return m.Run(StateStart, EventInit)
}

func (t *Treadmill) onInitEntry(c *Context) {
	t.display.Show("Initialising", "Checking belt, motor and incline subsystems...")
	t.stats = Stats{TargetSpeed: DefaultSpeed, TargetIncline: DefaultIncline}
	c.Logger.Info("subsystems initialised")
	c.Push(EventTreadmill)
}

func (t *Treadmill) onStandbyEntry(c *Context) {
	t.prompt(c, "Standby", []string{
		"s  start running",
		"d  diagnostics",
		"c  change configuration",
	}, map[rune]Event{
		's': EventRunningStart,
		'd': EventDiagnosticsStart,
		'c': EventConfigChange,
		'e': EventEmergencyStart,
	})
}

func (t *Treadmill) onDefaultEntry(c *Context) {
	t.runningAt = t.now()
	t.stats.Speed = t.stats.TargetSpeed
	t.stats.Incline = t.stats.TargetIncline
	c.Logger.Info("belt started", "speed", t.stats.Speed, "incline", t.stats.Incline)

	t.prompt(c, "Running", []string{
		"p  pause",
		"x  stop",
	}, map[rune]Event{
		'p': EventPause,
		'x': EventRunningStop,
		'e': EventEmergencyStart,
	})
}

func (t *Treadmill) onDefaultExit(c *Context) {
	elapsed := t.now().Sub(t.runningAt)
	t.stats.Distance += t.stats.Speed * elapsed.Hours()
	t.stats.Speed = 0
	c.Logger.Info("belt stopped", "elapsed", elapsed, "distance", t.stats.Distance)
}

func (t *Treadmill) onPauseEntry(c *Context) {
	t.prompt(c, "Paused", []string{
		"r  resume",
		"x  stop",
	}, map[rune]Event{
		'r': EventResume,
		'x': EventRunningStop,
		'e': EventEmergencyStart,
	})
}

func (t *Treadmill) onDiagnosticsEntry(c *Context) {
	t.prompt(c, "Diagnostics", []string{
		fmt.Sprintf("target speed    %5.1f km/h", t.stats.TargetSpeed),
		fmt.Sprintf("target incline  %5.1f %%", t.stats.TargetIncline),
		fmt.Sprintf("total distance  %5.2f km", t.stats.Distance),
		"",
		"x  leave diagnostics",
	}, map[rune]Event{
		'x': EventDiagnosticsStop,
		'e': EventEmergencyStart,
	})
}

// onAlterConfigEntry adjusts the targets in place until the user is done
func (t *Treadmill) onAlterConfigEntry(c *Context) {
	for {
		t.display.Show("Configuration",
			fmt.Sprintf("target speed    %5.1f km/h   (+/-)", t.stats.TargetSpeed),
			fmt.Sprintf("target incline  %5.1f %%      (]/[)", t.stats.TargetIncline),
			"",
			"d  done",
			t.footer(c),
		)
		key, ok := t.readKey(c)
		if !ok {
			return
		}
		switch key {
		case '+':
			t.stats.TargetSpeed = clamp(t.stats.TargetSpeed+SpeedStep, 0, MaxSpeed)
		case '-':
			t.stats.TargetSpeed = clamp(t.stats.TargetSpeed-SpeedStep, 0, MaxSpeed)
		case ']':
			t.stats.TargetIncline = clamp(t.stats.TargetIncline+InclineStep, 0, MaxIncline)
		case '[':
			t.stats.TargetIncline = clamp(t.stats.TargetIncline-InclineStep, 0, MaxIncline)
		case 'd':
			c.Push(EventConfigDone)
			return
		case 'e':
			c.Push(EventEmergencyStart)
			return
		}
	}
}

func (t *Treadmill) onEmergencyEntry(c *Context) {
	t.stats.Speed = 0
	t.stats.Incline = 0
	if t.alarm != nil {
		t.alarm.Sound()
	}
	c.Logger.Warn("emergency stop", "from", c.From())

	t.prompt(c, "EMERGENCY", []string{
		"Belt halted.",
		"r  release emergency stop",
	}, map[rune]Event{
		'r': EventEmergencyStop,
	})
}

// prompt renders a menu and pushes the event bound to the first recognised
// key. Unbound keys are ignored; quit or a closed keyboard pushes nothing.
func (t *Treadmill) prompt(c *Context, title string, lines []string, keys map[rune]Event) {
	lines = append(lines, "", t.footer(c))
	t.display.Show(title, lines...)

	for {
		key, ok := t.readKey(c)
		if !ok {
			return
		}
		if ev, bound := keys[key]; bound {
			c.Logger.Debug("key mapped", "key", string(key), "event", ev)
			c.Push(ev)
			return
		}
		c.Logger.Debug("key ignored", "key", string(key), "state", c.CurrentState())
	}
}

// readKey returns false when the user quits or input ends
func (t *Treadmill) readKey(c *Context) (rune, bool) {
	key, err := t.keyboard.ReadKey()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			c.Logger.Error("keyboard failed", "error", err)
		}
		return 0, false
	}
	if key == QuitKey {
		c.Logger.Info("quit requested", "state", c.CurrentState())
		return 0, false
	}
	return key, true
}

func (t *Treadmill) footer(c *Context) string {
	return fmt.Sprintf("[%s] speed %.1f km/h  incline %.1f %%  distance %.2f km   e emergency  q quit",
		c.CurrentState(), t.stats.Speed, t.stats.Incline, t.stats.Distance)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

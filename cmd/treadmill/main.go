// Command treadmill runs the console treadmill simulation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/librescoot/eventfsm"
	"github.com/librescoot/eventfsm/internal/alarm"
	"github.com/librescoot/eventfsm/internal/console"
	"github.com/librescoot/eventfsm/internal/treadmill"
)

type config struct {
	logPath  string
	debug    bool
	retain   bool
	sound    bool
	describe bool
	mermaid  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.logPath, "log", "treadmill.log", "log file (the terminal is taken by the menu)")
	flag.BoolVar(&cfg.debug, "debug", false, "log every dispatch step")
	flag.BoolVar(&cfg.retain, "retain", false, "retain unexpected events instead of flushing them")
	flag.BoolVar(&cfg.sound, "beep", true, "sound the emergency alarm on the audio device")
	flag.BoolVar(&cfg.describe, "describe", false, "print the state model and exit")
	flag.BoolVar(&cfg.mermaid, "mermaid", false, "print the state model as a Mermaid diagram and exit")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "treadmill: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.describe || cfg.mermaid {
		def := treadmill.New(nil, nil).Definition()
		if cfg.mermaid {
			return def.WriteMermaid(os.Stdout)
		}
		return def.Describe(os.Stdout)
	}

	logFile, err := os.OpenFile(cfg.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	level := log.InfoLevel
	if cfg.debug {
		level = log.DebugLevel
	}
	logger := slog.New(log.NewWithOptions(logFile, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "treadmill",
	}))
	eventfsm.Logger = logger

	screen, err := console.New()
	if err != nil {
		return err
	}
	defer screen.Close()

	var siren treadmill.Alarm = screen
	if cfg.sound {
		if s, err := alarm.New(); err != nil {
			// Non-fatal, the terminal bell still works
			logger.Warn("audio unavailable, using terminal bell", "error", err)
		} else {
			siren = s
		}
	}

	tm := treadmill.New(screen, screen, treadmill.WithAlarm(siren))
	m, err := tm.Machine(
		eventfsm.WithLogger[treadmill.State, treadmill.Event](logger),
		eventfsm.WithName[treadmill.State, treadmill.Event]("treadmill"),
		eventfsm.WithFlushUnexpectedEvents[treadmill.State, treadmill.Event](!cfg.retain),
		eventfsm.WithStateChangeCallback(func(from, to treadmill.State, ev treadmill.Event) {
			logger.Info("state changed", "from", from, "to", to, "event", ev)
		}),
	)
	if err != nil {
		return err
	}

	if err := m.Run(treadmill.StateStart, treadmill.EventInit); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	stats := tm.Stats()
	logger.Info("session ended",
		"state", m.CurrentState(),
		"distance_km", stats.Distance,
		"retained", len(m.Retained()),
	)
	return nil
}

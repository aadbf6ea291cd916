// Package console renders treadmill menus on a terminal and reads single
// key presses, using tcell.
package console

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Screen is a full-terminal display and keyboard
type Screen struct {
	screen     tcell.Screen
	style      tcell.Style
	titleStyle tcell.Style
	alertStyle tcell.Style

	// Last frame, redrawn on resize
	title string
	lines []string
}

// New opens the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initialises an existing tcell screen, e.g. a simulation screen
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()

	return &Screen{
		screen:     s,
		style:      tcell.StyleDefault,
		titleStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		alertStyle: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true),
	}, nil
}

// Close restores the terminal
func (s *Screen) Close() {
	s.screen.Fini()
}

// Show clears the terminal and draws a title followed by lines
func (s *Screen) Show(title string, lines ...string) {
	s.title = title
	s.lines = lines
	s.draw()
}

func (s *Screen) draw() {
	s.screen.Clear()

	titleStyle := s.titleStyle
	if s.title == "EMERGENCY" {
		titleStyle = s.alertStyle
	}
	s.drawText(1, 0, s.title, titleStyle)
	for i, line := range s.lines {
		s.drawText(1, i+2, line, s.style)
	}

	s.screen.Show()
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	width, height := s.screen.Size()
	if y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// ReadKey blocks until a printable key is pressed. Escape and Ctrl-C end
// input with io.EOF.
func (s *Screen) ReadKey() (rune, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// Screen finalised
			return 0, io.EOF
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, io.EOF
			case tcell.KeyRune:
				return ev.Rune(), nil
			}
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		}
	}
}

// Sound rings the terminal bell, the fallback alarm when no audio device is available
func (s *Screen) Sound() {
	_ = s.screen.Beep()
}

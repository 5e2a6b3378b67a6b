package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	"golang.org/x/term"

	"github.com/revelio-tools/revelio/config"
	"github.com/revelio-tools/revelio/revealer"
)

// colorsEnabled gates colour output: only on a real terminal, and never when
// the user asked for plain output via --no-color.
func colorsEnabled(isTerminal bool) bool {
	return isTerminal && !config.NoColor
}

// TerminalUI renders the reveal flow to a terminal: a spinner while the
// resolver works, then the message typed out frame by frame inside a box.
// Colours and animation are enabled only when the output is a real terminal;
// piped output gets the plain final message.
type TerminalUI struct {
	out        io.Writer
	au         aurora.Aurora
	isTerminal bool
}

func NewTerminalUI() *TerminalUI {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	return &TerminalUI{
		out:        os.Stdout,
		au:         aurora.NewAurora(colorsEnabled(isTerminal)),
		isTerminal: isTerminal,
	}
}

// NewUIWithWriter writes to an arbitrary writer with colours and animation
// off, used by tests to capture output.
func NewUIWithWriter(out io.Writer) *TerminalUI {
	return &TerminalUI{
		out:        out,
		au:         aurora.NewAurora(false),
		isTerminal: false,
	}
}

// Spinner starts an animated spinner with msg and returns a stop function.
// On non-terminal outputs the spinner is a no-op and only the message is
// printed once.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.isTerminal {
		fmt.Fprintf(u.out, "%s\n", msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
	}
}

// Typewriter consumes reveal frames and repaints the boxed message in place
// after each one, producing the typing effect. It returns the final text, or
// "" when the stream was cancelled before the terminal frame arrived.
func (u *TerminalUI) Typewriter(states <-chan revealer.RevealState) string {
	final := ""
	finished := false
	linesDrawn := 0
	for state := range states {
		if !state.InProgress {
			final = state.Text
			finished = true
		}
		if !u.isTerminal {
			continue
		}
		frame := MessageFrame(state.Text)
		if linesDrawn > 0 {
			fmt.Fprint(u.out, ansi.CursorUp(linesDrawn), "\r")
		}
		fmt.Fprint(u.out, frame, "\n")
		linesDrawn = strings.Count(frame, "\n") + 1
	}
	if !finished {
		return ""
	}
	if !u.isTerminal {
		fmt.Fprintln(u.out, final)
	}
	return final
}

func (u *TerminalUI) Info(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

func (u *TerminalUI) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(u.out, "%s\n", u.au.Green(msg).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(u.out, "%s\n", u.au.Red(msg).String())
}

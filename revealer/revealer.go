package revealer

import (
	"context"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// RevealState is one frame of the typewriter effect: the prefix of the
// message revealed so far and whether more frames are coming. The terminal
// frame repeats the full message with InProgress set to false.
type RevealState struct {
	Text       string
	InProgress bool
}

// Units splits message into grapheme clusters. A multi-codepoint emoji or a
// combining sequence counts as one unit, so glyphs are never revealed half
// drawn.
func Units(message string) []string {
	result := []string{}
	g := uniseg.NewGraphemes(message)
	for g.Next() {
		result = append(result, g.Str())
	}
	return result
}

// Reveal produces the frames of a typewriter reveal of message, one per
// grapheme cluster, sleeping tick before each emission. The channel is closed
// after the terminal frame. Cancelling ctx stops the pending sleep and closes
// the channel without emitting anything further.
func Reveal(ctx context.Context, message string, tick time.Duration) <-chan RevealState {
	out := make(chan RevealState)
	go func() {
		defer close(out)

		var shown strings.Builder
		for _, unit := range Units(message) {
			if !pause(ctx, tick) {
				return
			}
			shown.WriteString(unit)
			if !emit(ctx, out, RevealState{Text: shown.String(), InProgress: true}) {
				return
			}
		}
		if !pause(ctx, tick) {
			return
		}
		emit(ctx, out, RevealState{Text: message, InProgress: false})
	}()
	return out
}

// pause sleeps for tick, returning false if ctx was cancelled first.
func pause(ctx context.Context, tick time.Duration) bool {
	timer := time.NewTimer(tick)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func emit(ctx context.Context, out chan<- RevealState, state RevealState) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case out <- state:
		return true
	case <-ctx.Done():
		return false
	}
}

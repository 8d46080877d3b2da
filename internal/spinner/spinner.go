// Package spinner draws a small braille loading animation while a blocking
// call is in flight.
package spinner

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	resetColor = "\033[0m"
	clearLine  = "\r\033[K"
)

// trailLength is the number of lit pixels, head included.
const trailLength = 4

// circle is the clockwise path on the 4x4 grid, starting top center.
//
//	  0   1   2   3
//	0     *   *
//	1 *           *
//	2 *           *
//	3     *   *
var circle = [][2]int{
	{1, 0}, {2, 0}, {3, 1}, {3, 2},
	{2, 3}, {1, 3}, {0, 2}, {0, 1},
}

// Frame returns the braille rendering of animation frame i.
func Frame(i int) string {
	var g grid
	n := len(circle)
	for t := range trailLength {
		pos := circle[((i-t)%n+n)%n]
		g.set(pos[0], pos[1])
	}
	return g.String()
}

// FrameCount is the number of distinct frames in one rotation.
func FrameCount() int {
	return len(circle)
}

// Spinner animates Frame on a single terminal line.
type Spinner struct {
	w         io.Writer
	interval  time.Duration
	trueColor bool

	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a spinner drawing to w, normally a terminal's stderr.
func New(w io.Writer) *Spinner {
	colorterm := os.Getenv("COLORTERM")
	return &Spinner{
		w:         w,
		interval:  80 * time.Millisecond,
		trueColor: strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"),
	}
}

// Start begins the animation. It is a no-op while already running.
func (s *Spinner) Start() {
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx)
}

// Stop clears the line and waits for the animation goroutine to exit.
func (s *Spinner) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
}

func (s *Spinner) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	fmt.Fprint(s.w, hideCursor)
	frame := 0
	s.render(frame)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprint(s.w, clearLine+resetColor+showCursor)
			return
		case <-ticker.C:
			frame++
			s.render(frame)
		}
	}
}

func (s *Spinner) render(frame int) {
	fmt.Fprintf(s.w, "\r%s%s", s.colorCode(frame), Frame(frame))
}

// colorCode cycles the hue once every ~37 frames (about three seconds).
func (s *Spinner) colorCode(frame int) string {
	r, g, b := rainbow(2 * math.Pi * float64(frame) / 37.5)
	if s.trueColor {
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	return fmt.Sprintf("\033[38;5;%dm", to256(r, g, b))
}

// rainbow maps phase to a color using three sine waves 120 degrees apart.
func rainbow(phase float64) (r, g, b int) {
	channel := func(offset float64) int {
		return int((math.Sin(phase+offset) + 1) / 2 * 255)
	}
	return channel(0), channel(2 * math.Pi / 3), channel(4 * math.Pi / 3)
}

// to256 converts RGB to an index in the 6x6x6 cube of the 256-color palette.
func to256(r, g, b int) int {
	scale := func(v int) int { return (v*5 + 127) / 255 }
	return 16 + 36*scale(r) + 6*scale(g) + scale(b)
}

// Run calls fn while s animates. A nil s just calls fn.
func Run[T any](s *Spinner, fn func() (T, error)) (T, error) {
	if s == nil {
		return fn()
	}
	s.Start()
	defer s.Stop()
	return fn()
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status line while a search runs. Wired to
// [pipeline.Options.OnVisit] through [Spinner.Visit], it also shows how many
// configurations have been dequeued and the current BFS depth.
type Spinner struct {
	w       io.Writer
	message string

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	stopped  chan struct{}

	states atomic.Int64
	depth  atomic.Int64

	mu    sync.Mutex
	width int // printed width of the last frame
}

// newSpinner creates a spinner writing to w that stops when ctx is done.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation in a separate goroutine.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Visit records one dequeued configuration. It is safe to call from the
// searching goroutine while the spinner draws.
func (s *Spinner) Visit(_ *hanoi.Configuration, depth int) {
	s.states.Add(1)
	s.depth.Store(int64(depth))
}

// Stop ends the animation and clears the line. It must follow Start and may
// be called repeatedly.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.stopped
	})
}

// Cancelled reports whether the spinner's context has ended, either through
// Stop or through cancellation of the parent context.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// line renders the status text shown next to the frame.
func (s *Spinner) line() string {
	n := s.states.Load()
	if n == 0 {
		return s.message
	}
	return fmt.Sprintf("%s %d states · depth %d", s.message, n, s.depth.Load())
}

func (s *Spinner) draw(frame string) {
	text := styleSpinner.Render(frame) + " " + StyleDim.Render(s.line())

	s.mu.Lock()
	defer s.mu.Unlock()
	w := lipgloss.Width(text)
	pad := max(s.width-w, 0)
	fmt.Fprintf(s.w, "\r%s%s", text, strings.Repeat(" ", pad))
	s.width = w
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		s.width = 0
	}
}

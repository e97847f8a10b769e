package oracle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rxprobe/rxprobe/internal/engine"
	"github.com/rxprobe/rxprobe/internal/logging"
)

// testPrefix marks a line whose remainder is matched against the
// pending pattern instead of being compiled.
const testPrefix = "TEST:"

// maxLineBytes bounds a single protocol line. Patterns in conformance
// suites are short; 1 MiB leaves plenty of headroom.
const maxLineBytes = 1 << 20

// Loop runs the line protocol against a single regex engine. Verdicts
// go through a buffered writer that is flushed after every line. A
// Loop is single-use: create a new one per input stream.
type Loop struct {
	eng   engine.Engine
	in    io.Reader
	out   *bufio.Writer
	count Count
	log   *logrus.Entry

	// pending is the session state: the most recently compiled pattern,
	// or nil when the next line should be treated as a pattern.
	pending engine.Regexp
}

// NewLoop creates a Loop reading protocol lines from in and writing
// verdicts to out.
func NewLoop(eng engine.Engine, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		eng: eng,
		in:  in,
		out: bufio.NewWriter(out),
		log: logging.WithComponent("oracle").WithField("flavor", eng.Name()),
	}
}

// Queries returns the number of input lines processed so far.
func (l *Loop) Queries() uint64 {
	return l.count.Value()
}

// Run reads pattern and test lines until input ends or ctx is
// cancelled. Cancellation is a clean shutdown: Run returns nil without
// emitting anything further.
func (l *Loop) Run(ctx context.Context) error {
	return l.run(ctx, l.step)
}

// RunCompileOnly treats every line as an independent compilation
// attempt: no test phase, no session state.
func (l *Loop) RunCompileOnly(ctx context.Context) error {
	return l.run(ctx, l.stepCompileOnly)
}

func (l *Loop) run(ctx context.Context, step func(line string) error) error {
	lines, errc := readLines(ctx, l.in)
	for {
		select {
		case <-ctx.Done():
			l.log.WithField("queries", l.count.Value()).Debug("interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				l.log.WithField("queries", l.count.Value()).Debug("input exhausted")
				return nil
			}
			l.count.add()
			if err := step(line); err != nil {
				return err
			}
		}
	}
}

// step advances the interactive protocol by one line.
func (l *Loop) step(line string) error {
	switch {
	case l.pending == nil:
		return l.compile(line)
	case strings.HasPrefix(line, testPrefix):
		return l.match(line[len(testPrefix):])
	default:
		// Protocol reset. The line is discarded without a verdict; it is
		// not retried as a pattern in this iteration.
		l.log.Debug("protocol reset")
		l.pending = nil
		return nil
	}
}

func (l *Loop) stepCompileOnly(line string) error {
	if _, err := l.eng.Compile(line); err != nil {
		return l.emit(EscapeDiagnostic(err.Error()))
	}
	return l.emit("success")
}

func (l *Loop) compile(line string) error {
	re, err := l.eng.Compile(line)
	if err != nil {
		return l.emit(EscapeDiagnostic(err.Error()))
	}
	l.pending = re
	return l.emit("success")
}

func (l *Loop) match(test string) error {
	re := l.pending
	ok, err := re.MatchesStart(test)
	switch {
	case err != nil:
		l.pending = nil
		return l.emit(EscapeDiagnostic(err.Error()))
	case ok:
		return l.emit("test good")
	default:
		l.pending = nil
		return l.emit(EscapeDiagnostic(fmt.Sprintf("Regex '%s' does not match '%s'", re.Pattern(), test)))
	}
}

// emit writes one verdict line and flushes, so the harness on the
// other end of the pipe sees it before sending the next line.
func (l *Loop) emit(verdict string) error {
	if _, err := fmt.Fprintln(l.out, verdict); err != nil {
		return fmt.Errorf("failed to write verdict: %w", err)
	}
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush verdict: %w", err)
	}
	return nil
}

// readLines feeds input lines to a channel so the loop can honor
// context cancellation while a read is blocked. Trailing "\n" and
// "\r\n" are stripped. The error channel receives exactly one value
// once the lines channel is closed or the context is done.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Package session runs the interactive read-validate-execute loop over a
// line-oriented text channel such as stdin/stdout.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/iliyamo/booking-a-show/internal/command"
	"github.com/iliyamo/booking-a-show/internal/handler"
)

// Loop reads commands from In and writes responses to Out.  It owns the
// parser and handler for the lifetime of one session.
type Loop struct {
	In      io.Reader
	Out     io.Writer
	Parser  *command.Parser
	Handler *handler.Handler
}

// New constructs a Loop and panics if any dependency is nil.
func New(in io.Reader, out io.Writer, parser *command.Parser, h *handler.Handler) *Loop {
	if in == nil || out == nil || parser == nil || h == nil {
		panic("nil dependency passed to session.New")
	}
	return &Loop{In: in, Out: out, Parser: parser, Handler: h}
}

// Run prints the greeting and processes lines until EXIT, end of input or
// ctx cancellation.  Rejected lines never stop the loop; only read and
// write failures on the channel itself are returned.
func (l *Loop) Run(ctx context.Context) error {
	w := &errWriter{w: l.Out}
	w.print(Welcome, "\n", Help, handler.ModeBanner(l.Handler.Mode()), "\n", Prompt)

	sc := bufio.NewScanner(l.In)
	for w.err == nil && sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSuffix(sc.Text(), "\r")

		cmd, err := l.Parser.Parse(line, l.Handler.Mode())
		if err != nil {
			w.print(InvalidInput, err.Error(), "\n", Help, Prompt)
			continue
		}
		if _, ok := cmd.(command.Exit); ok {
			return nil
		}

		out, err := l.Handler.Execute(ctx, cmd)
		if err != nil {
			log.Printf("booking: %s failed after validation: %v", cmd.Kind(), err)
			w.print(InvalidInput, err.Error(), "\n", Help, Prompt)
			continue
		}
		w.print(out, "\n", Prompt)
	}
	if w.err != nil {
		return fmt.Errorf("write output: %w", w.err)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// errWriter keeps the first write error so the loop can check once per
// line instead of after every fragment.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) print(parts ...string) {
	for _, p := range parts {
		if e.err != nil {
			return
		}
		_, e.err = io.WriteString(e.w, p)
	}
}

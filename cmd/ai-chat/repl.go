package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/minhyannv/hello-ai-go/pkg/chat"
	loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"
)

const (
	quitCommand       = "quit"
	sessionTimeLayout = "2006-01-02 15:04:05"

	// Pasted input can be far longer than bufio's 64 KiB default token.
	initialLineBytes = 64 * 1024
	maxLineBytes     = 16 * 1024 * 1024
)

// replier answers one turn. *assistant.Assistant satisfies it.
type replier interface {
	Reply(ctx context.Context, userInput string) chat.Result
}

// replOptions configures REPL behavior.
type replOptions struct {
	Verbose bool
	Logger  loggerpkg.Logger
	Now     func() time.Time
}

// runREPL reads one line at a time from in and answers until "quit" or end
// of input. The session-end line is written once the loop stops.
func runREPL(ctx context.Context, app replier, opts replOptions, in io.Reader, out io.Writer) error {
	if app == nil {
		return fmt.Errorf("assistant is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", nil)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			// Close the dangling prompt line.
			_, _ = fmt.Fprintln(out)
			break
		}

		input := scanner.Text()
		if isQuit(input) {
			printGoodbye(out)
			break
		}

		result := app.Reply(ctx, input)
		if !result.OK() {
			if opts.Verbose {
				loggerpkg.Error(opts.Logger, "turn failed", loggerpkg.Fields{
					"turn":  result.TurnID,
					"error": result.Err.Error(),
				})
			}
			_, _ = fmt.Fprintln(out, result.Text())
			continue
		}
		_, _ = fmt.Fprintf(out, "AI: %s\n", result.Content)
	}

	_, _ = fmt.Fprintf(out, "Session ended at %s\n", opts.Now().Format(sessionTimeLayout))

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func isQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), quitCommand)
}

func printWelcome(out io.Writer) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(out, "🤖 Welcome to your first AI application!")
	_, _ = fmt.Fprintf(out, "Type '%s' to exit\n", quitCommand)
	_, _ = fmt.Fprintln(out)
}

func printGoodbye(out io.Writer) {
	_, _ = color.New(color.Bold).Fprintln(out, "👋 Goodbye!")
}

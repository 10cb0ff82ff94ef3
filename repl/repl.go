// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"loxite/internal/pipeline"
)

const helpText = `Enter an expression to evaluate it.
  :tokens  toggle the token dump
  :ast     toggle the tree dump
  :help    show this help
  :quit    leave the prompt`

// REPL evaluates one expression per line. Lines are independent: nothing
// carries over from one line to the next.
type REPL struct {
	reader LineReader
	prompt string
	engine pipeline.Engine
	lint   bool
	output *pipeline.Output
}

func New(reader LineReader, prompt string, engine pipeline.Engine, lint bool, output *pipeline.Output) *REPL {
	return &REPL{
		reader: reader,
		prompt: prompt,
		engine: engine,
		lint:   lint,
		output: output,
	}
}

// Run reads lines until end of input or :quit.
func (r *REPL) Run() error {
	defer r.reader.Close()

	for {
		line, err := r.reader.ReadLine(r.prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.output.Out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		r.reader.AddHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			if quit := r.command(trimmed); quit {
				return nil
			}
			continue
		}

		r.Eval(line)
	}
}

// Eval runs a single line and writes its result.
func (r *REPL) Eval(line string) {
	result := pipeline.Run(line, pipeline.Options{Engine: r.engine, Filename: "<stdin>", Lint: r.lint})
	logger().Debugf("line exit status %d", result.ExitCode())
	r.output.Write(result)
}

func (r *REPL) command(cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":tokens":
		r.output.ShowTokens = !r.output.ShowTokens
		fmt.Fprintf(r.output.Out, "token dump %s\n", onOff(r.output.ShowTokens))
	case ":ast":
		r.output.ShowAST = !r.output.ShowAST
		fmt.Fprintf(r.output.Out, "tree dump %s\n", onOff(r.output.ShowAST))
	case ":help":
		fmt.Fprintln(r.output.Out, helpText)
	default:
		fmt.Fprintf(r.output.Err, "unknown command %s. Type :help for a list.\n", cmd)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("loxite.repl")
}

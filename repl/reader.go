// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

// LineReader supplies prompt lines. ReadLine returns io.EOF when input ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	AddHistory(line string)
	Close() error
}

// TerminalReader edits lines with liner and keeps history in a file.
type TerminalReader struct {
	state       *liner.State
	historyFile string
}

func NewTerminalReader(historyFile string) *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &TerminalReader{state: state, historyFile: historyFile}
}

// ReadLine returns an empty line when Ctrl-C aborts the prompt.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}
	return line, err
}

func (r *TerminalReader) AddHistory(line string) {
	r.state.AppendHistory(line)
}

func (r *TerminalReader) Close() error {
	if r.historyFile != "" {
		if f, err := os.Create(r.historyFile); err == nil {
			_, _ = r.state.WriteHistory(f)
			_ = f.Close()
		} else {
			logger().Warningf("could not save history: %s", err)
		}
	}
	return r.state.Close()
}

// StreamReader reads lines from a non-interactive input such as a pipe.
type StreamReader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewStreamReader reads from in and echoes prompts to prompt, which may be nil.
func NewStreamReader(in io.Reader, prompt io.Writer) *StreamReader {
	return &StreamReader{scanner: bufio.NewScanner(in), prompt: prompt}
}

func (r *StreamReader) ReadLine(prompt string) (string, error) {
	if r.prompt != nil {
		fmt.Fprint(r.prompt, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *StreamReader) AddHistory(string) {}

func (r *StreamReader) Close() error { return nil }

// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"loxite/internal/config"
	"loxite/internal/pipeline"
	"loxite/repl"
)

const usage = "Usage: loxite [flags] [script]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// countFlag counts repeated boolean occurrences, as in -v -v.
type countFlag int

func (c *countFlag) String() string { return strconv.Itoa(int(*c)) }

func (c *countFlag) Set(value string) error {
	if value == "true" {
		*c++
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*c = countFlag(n)
	return nil
}

func (c *countFlag) IsBoolFlag() bool { return true }

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	startTime := time.Now()

	fs := flag.NewFlagSet("loxite", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", config.DefaultPath(), "path to the YAML config file")
	showTokens := fs.Bool("tokens", false, "print the token stream")
	showAST := fs.Bool("ast", false, "print the parsed expression tree")
	pretty := fs.Bool("pretty", false, "render diagnostics with source excerpts")
	engineName := fs.String("engine", "", "parser engine: descent or participle")
	expr := fs.String("e", "", "evaluate `expression` and exit")
	lint := fs.Bool("lint", false, "report likely mistakes as warnings")
	format := fs.Bool("fmt", false, "print the input in canonical layout instead of evaluating it")
	var verbosity countFlag
	fs.Var(&verbosity, "v", "increase log verbosity (repeatable)")

	if err := fs.Parse(args); err != nil {
		return pipeline.ExitUsage
	}
	exprSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			exprSet = true
		}
	})
	if fs.NArg() > 1 || (fs.NArg() == 1 && exprSet) {
		fmt.Fprintln(stderr, usage)
		return pipeline.ExitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pipeline.ExitUsage
	}
	if *engineName != "" {
		cfg.Engine = *engineName
	}
	cfg.ShowTokens = cfg.ShowTokens || *showTokens
	cfg.ShowAST = cfg.ShowAST || *showAST
	cfg.Pretty = cfg.Pretty || *pretty
	cfg.Lint = cfg.Lint || *lint
	cfg.LogVerbosity += int(verbosity)

	configureLogging(cfg)
	if !cfg.Color {
		color.NoColor = true
	}

	engine, err := pipeline.ParseEngine(cfg.Engine)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pipeline.ExitUsage
	}

	output := &pipeline.Output{
		Out:        stdout,
		Err:        stderr,
		Color:      cfg.Color,
		Pretty:     cfg.Pretty,
		ShowTokens: cfg.ShowTokens,
		ShowAST:    cfg.ShowAST,
	}

	var (
		source   string
		filename string
	)
	switch {
	case exprSet:
		source, filename = *expr, "<expr>"
	case fs.NArg() == 1:
		filename = fs.Arg(0)
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(stderr, "failed to read file: %v\n", err)
			return pipeline.ExitNoInput
		}
		source = string(content)
	case *format:
		fmt.Fprintln(stderr, "-fmt needs a script or -e expression")
		return pipeline.ExitUsage
	default:
		return runREPL(stdin, cfg, engine, output)
	}
	output.Filename = filename

	if *format {
		formatted, diagnostics := pipeline.Format(filename, source)
		if len(diagnostics) > 0 {
			output.WriteDiagnostics(source, diagnostics)
			return pipeline.ExitDataErr
		}
		fmt.Fprintln(stdout, formatted)
		return pipeline.ExitOK
	}

	result := pipeline.Run(source, pipeline.Options{Engine: engine, Filename: filename, Lint: cfg.Lint})
	output.Write(result)

	commonlog.GetLogger("loxite").Infof("processed %s in %s", filename, formatDuration(time.Since(startTime)))
	return result.ExitCode()
}

func runREPL(stdin io.Reader, cfg *config.Config, engine pipeline.Engine, output *pipeline.Output) int {
	var reader repl.LineReader
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		reader = repl.NewTerminalReader(cfg.HistoryFile)
	} else {
		reader = repl.NewStreamReader(stdin, output.Out)
	}

	if err := repl.New(reader, cfg.Prompt, engine, cfg.Lint, output).Run(); err != nil {
		fmt.Fprintln(output.Err, err)
		return pipeline.ExitIOErr
	}
	return pipeline.ExitOK
}

func configureLogging(cfg *config.Config) {
	var path *string
	if cfg.LogFile != "" {
		path = &cfg.LogFile
	}
	commonlog.Configure(cfg.LogVerbosity, path)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

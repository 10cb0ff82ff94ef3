// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"loxite/internal/lsp"
	"loxite/internal/pipeline"
)

const lsName = "loxite" // Name identifier for the language server

var (
	version = "0.1.0"
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	verbosity := flag.Int("v", 1, "log verbosity")
	logFile := flag.String("log", "", "write logs to `file` instead of stderr")
	engineName := flag.String("engine", string(pipeline.EngineDescent), "parser engine: descent or participle")
	flag.Parse()

	var logPath *string
	if *logFile != "" {
		logPath = logFile
	}
	commonlog.Configure(*verbosity, logPath)
	log := commonlog.GetLogger("loxite.lsp")

	engine, err := pipeline.ParseEngine(*engineName)
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(pipeline.ExitUsage)
	}

	loxHandler := lsp.NewLoxHandler(engine)

	handler = protocol.Handler{
		Initialize:                     loxHandler.Initialize,
		Initialized:                    loxHandler.Initialized,
		Shutdown:                       loxHandler.Shutdown,
		SetTrace:                       loxHandler.SetTrace,
		TextDocumentDidOpen:            loxHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           loxHandler.TextDocumentDidClose,
		TextDocumentDidChange:          loxHandler.TextDocumentDidChange,
		TextDocumentCompletion:         loxHandler.TextDocumentCompletion,
		TextDocumentHover:              loxHandler.TextDocumentHover,
		TextDocumentFormatting:         loxHandler.TextDocumentFormatting,
		TextDocumentSemanticTokensFull: loxHandler.TextDocumentSemanticTokensFull,
	}

	// debug=false keeps glsp's own protocol tracing off
	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}

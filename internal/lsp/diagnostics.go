package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"loxite/internal/errors"
)

var diagnosticSources = map[errors.Kind]string{
	errors.LexError:     "loxite-scanner",
	errors.ParseError:   "loxite-parser",
	errors.RuntimeError: "loxite-runtime",
	errors.Lint:         "loxite-lint",
}

// ConvertDiagnostics transforms pipeline diagnostics into LSP diagnostics.
// The result is never nil so that publishing it clears stale markers.
func ConvertDiagnostics(diagnostics []*errors.Diagnostic) []protocol.Diagnostic {
	result := make([]protocol.Diagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		line := uint32(max(0, d.Position.Line-1))
		start := uint32(max(0, d.Position.Column-1))

		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(max(1, d.Length))},
			},
			Severity: ptrSeverity(severity(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString(diagnosticSources[d.Kind]),
			Message:  d.String(),
		})
	}

	return result
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}

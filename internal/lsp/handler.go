package lsp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"loxite/internal/ast"
	"loxite/internal/interpreter"
	"loxite/internal/pipeline"
)

var keywordCompletions = []string{"true", "false", "nil"}

type document struct {
	text   string
	result *pipeline.Result
}

// LoxHandler implements the LSP server handlers. Every document holds a
// single expression and is re-run through the pipeline on each change.
type LoxHandler struct {
	mu        sync.RWMutex
	engine    pipeline.Engine
	documents map[protocol.DocumentUri]*document
}

func NewLoxHandler(engine pipeline.Engine) *LoxHandler {
	return &LoxHandler{
		engine:    engine,
		documents: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *LoxHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	logger().Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			HoverProvider:              true,
			DocumentFormattingProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *LoxHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	logger().Info("initialized")
	return nil
}

func (h *LoxHandler) Shutdown(ctx *glsp.Context) error {
	logger().Info("shutdown")
	return nil
}

func (h *LoxHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (h *LoxHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	logger().Debugf("opened %s", params.TextDocument.URI)

	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (h *LoxHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	logger().Debugf("changed %s", params.TextDocument.URI)

	h.mu.RLock()
	text := ""
	if doc, ok := h.documents[params.TextDocument.URI]; ok {
		text = doc.text
	}
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case *protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c)
		case *protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, *c)
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	h.update(ctx, params.TextDocument.URI, text)
	return nil
}

func (h *LoxHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	logger().Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	return nil
}

// TextDocumentCompletion offers the literal keywords, the only words an
// expression can contain.
func (h *LoxHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(keywordCompletions))
	for _, keyword := range keywordCompletions {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  &kind,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

func (h *LoxHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.result.Tokens)),
	}, nil
}

// TextDocumentHover shows the innermost subexpression under the cursor in
// its printed form together with the value it evaluates to.
func (h *LoxHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.result.Expr == nil {
		return nil, nil
	}

	offset := offsetAt(doc.text, params.Position)
	node := innermostAt(doc.result.Expr, offset)
	if node == nil {
		return nil, nil
	}

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(ast.Print(node))
	b.WriteString("\n```\n")
	value, runtimeErr := interpreter.Evaluate(node)
	if runtimeErr != nil {
		b.WriteString(runtimeErr.String())
	} else {
		fmt.Fprintf(&b, "%s `%s`", value.Kind(), value)
	}

	start, end := node.NodePos(), node.NodeEndPos()
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: b.String(),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(start.Line - 1), Character: uint32(start.Column - 1)},
			End:   protocol.Position{Line: uint32(end.Line - 1), Character: uint32(end.Column - 1)},
		},
	}, nil
}

// TextDocumentFormatting rewrites the document in canonical layout.
// Documents with comments are left alone since formatting drops them.
func (h *LoxHandler) TextDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if strings.Contains(doc.text, "//") {
		return nil, nil
	}

	formatted, diagnostics := pipeline.Format(params.TextDocument.URI, doc.text)
	if len(diagnostics) > 0 || formatted == doc.text {
		return nil, nil
	}

	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   endOf(doc.text),
		},
		NewText: formatted,
	}}, nil
}

func (h *LoxHandler) document(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

func (h *LoxHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	result := pipeline.Run(text, pipeline.Options{Engine: h.engine, Filename: uri, Lint: true})

	h.mu.Lock()
	h.documents[uri] = &document{text: text, result: result}
	h.mu.Unlock()

	diagnostics := append(ConvertDiagnostics(result.Diagnostics), ConvertDiagnostics(result.Warnings)...)
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	logger().Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// innermostAt returns the deepest node whose span contains offset.
func innermostAt(root ast.Expr, offset int) ast.Expr {
	var found ast.Expr
	ast.Walk(root, func(node ast.Expr) bool {
		if offset < node.NodePos().Offset || offset >= node.NodeEndPos().Offset {
			return false
		}
		found = node
		return true
	})
	return found
}

// offsetAt converts an LSP position into a byte offset, treating
// characters as bytes.
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
	}

	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text) - offset
	}
	return offset + min(int(pos.Character), lineEnd)
}

func endOf(text string) protocol.Position {
	line := strings.Count(text, "\n")
	lastLine := text[strings.LastIndexByte(text, '\n')+1:]
	return protocol.Position{Line: uint32(line), Character: uint32(len(lastLine))}
}

func applyChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	start := offsetAt(text, change.Range.Start)
	end := offsetAt(text, change.Range.End)
	return text[:start] + change.Text + text[end:]
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("loxite.lsp")
}

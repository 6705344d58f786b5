// Package lsp implements a language server that reports the web links in
// open text documents as document links.
package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "snacks"

var log = commonlog.GetLogger("snacks.lsp")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.RWMutex
	documents map[protocol.DocumentUri]string
}

func NewServer(version string) *Server {
	s := &Server{
		version:   version,
		documents: make(map[protocol.DocumentUri]string),
	}

	s.handler = protocol.Handler{
		Initialize:               s.initialize,
		Initialized:              s.initialized,
		Shutdown:                 s.shutdown,
		SetTrace:                 s.setTrace,
		TextDocumentDidOpen:      s.textDocumentDidOpen,
		TextDocumentDidChange:    s.textDocumentDidChange,
		TextDocumentDidClose:     s.textDocumentDidClose,
		TextDocumentDocumentLink: s.textDocumentDocumentLink,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

// Document returns the current text of an open document.
func (s *Server) Document(uri protocol.DocumentUri) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.documents[uri]
	return text, ok
}

func (s *Server) setDocument(uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[uri] = text
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s %s initialized", lsName, s.version)
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("open %s", uriToPath(string(params.TextDocument.URI)))
	s.setDocument(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.setDocument(params.TextDocument.URI, whole.Text)
	} else {
		log.Warningf("ignoring incremental change to %s", uriToPath(string(params.TextDocument.URI)))
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDocumentLink(ctx *glsp.Context, params *protocol.DocumentLinkParams) ([]protocol.DocumentLink, error) {
	text, ok := s.Document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	links := FindLinks(text)
	log.Debugf("%d links in %s", len(links), uriToPath(string(params.TextDocument.URI)))
	return links, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}

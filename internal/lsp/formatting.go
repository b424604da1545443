package lsp

import (
	"encoding/json"
	"strings"

	"quiver/internal/format"
)

func (s *Server) handleFormatting(msg *rpcMessage) error {
	var params documentFormattingParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	text, ok := s.documentText(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, []textEdit{})
	}
	opts := format.Options{
		IndentWidth: params.Options.TabSize,
		UseTabs:     !params.Options.InsertSpaces,
	}
	formatted := format.Format(text, opts)
	if formatted == text {
		return s.sendResponse(msg.ID, []textEdit{})
	}
	// Один эдит на весь документ: клиенты применяют его атомарно.
	lineCount := strings.Count(text, "\n") + 1
	edit := textEdit{
		Range: lspRange{
			Start: position{Line: 0, Character: 0},
			End:   position{Line: lineCount, Character: 0},
		},
		NewText: formatted,
	}
	return s.sendResponse(msg.ID, []textEdit{edit})
}

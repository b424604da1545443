package lsp

import (
	"encoding/json"

	"quiver/internal/complete"
)

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params completionParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	text, ok := s.documentText(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, completionList{IsIncomplete: false, Items: []completionItem{}})
	}
	offset := offsetForPosition(text, params.Position)
	span, candidates := complete.Complete(text, offset)

	editRange := lspRange{
		Start: positionForOffset(text, span.Start),
		End:   positionForOffset(text, span.End),
	}
	items := make([]completionItem, 0, len(candidates))
	for _, c := range candidates {
		item := completionItem{
			Label:            c.Label,
			Kind:             completionItemKindKeyword,
			Detail:           c.Detail,
			InsertTextFormat: insertTextFormatPlain,
			TextEdit:         &textEdit{Range: editRange, NewText: c.InsertText},
		}
		if c.IsSnippet {
			item.Kind = completionItemKindSnippet
			item.InsertTextFormat = insertTextFormatSnippet
		}
		items = append(items, item)
	}
	return s.sendResponse(msg.ID, completionList{IsIncomplete: false, Items: items})
}

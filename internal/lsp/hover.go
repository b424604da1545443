package lsp

import (
	"encoding/json"

	hoverpkg "quiver/internal/hover"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params hoverParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	text, ok := s.documentText(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}
	offset := offsetForPosition(text, params.Position)
	doc, found := hoverpkg.Hover(text, offset)
	if !found {
		return s.sendResponse(msg.ID, nil)
	}
	return s.sendResponse(msg.ID, &hover{
		Contents: markupContent{
			Kind:  "markdown",
			Value: doc,
		},
	})
}

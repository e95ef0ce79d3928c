package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "TruePass Chatbot Backend",
    "description": "API for the TruePass support chatbot: intent-scored chat, suggestions, feedback and session export",
    "version": "1.0.0"
  },
  "basePath": "/",
  "paths": {}
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}

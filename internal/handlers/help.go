package handlers

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"sentiview/internal/contextutil"
)

//go:embed help.md
var helpMarkdown []byte

// HelpHandler renders the embedded usage document as HTML.
type HelpHandler struct {
	parser   goldmark.Markdown
	template *template.Template
}

// helpPageData holds template data for the rendered help page.
type helpPageData struct {
	Content template.HTML
}

// NewHelpHandler creates a new HelpHandler.
func NewHelpHandler() *HelpHandler {
	tmpl := template.Must(template.New("help").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Sentiview help</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 800px;
      line-height: 1.7;
      color: #222;
    }
    h1, h2 { color: #111; }
    code {
      font-family: 'SFMono-Regular', Consolas, Menlo, monospace;
      background: #f0f1f4;
      padding: 2px 5px;
      border-radius: 4px;
    }
    a { color: #007bff; }
  </style>
</head>
<body>
  <p><a href="/">&larr; back to the viewer</a></p>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &HelpHandler{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		template: tmpl,
	}
}

// ServeHTTP handles GET /help.
func (h *HelpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	content, err := h.renderMarkdown(helpMarkdown)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render help page", "error", err)
		http.Error(w, "failed to render help page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, helpPageData{Content: template.HTML(content)}); err != nil {
		logger.ErrorContext(ctx, "failed to execute help template", "error", err)
	}
}

func (h *HelpHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

package ui

import (
	"io"
	"text/template"
)

// Title heads the rendered view.
const Title = "Todo Summary Assistant"

var viewTemplate = template.Must(template.New("view").Parse(
	`{{.Title}}
{{range .State.Todos}}  {{.ID}}. {{.Text}}
{{else}}  (no todos yet)
{{end}}> {{.State.Draft}}
{{if .State.Busy}}[Sending...]{{else}}[Summarize and Send to Slack]{{end}}
{{with .State.Message}}{{if $.State.IsSuccess}}✓{{else}}✗{{end}} {{.}}
{{end}}`))

type renderData struct {
	Title string
	State State
}

// Render writes a plain-text rendition of the view to w.
func (v *View) Render(w io.Writer) error {
	return viewTemplate.Execute(w, renderData{Title: Title, State: v.State()})
}

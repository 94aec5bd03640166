package main

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/jhalme/ironweek/internal/contexthelpers"
	"github.com/yuin/goldmark"
)

// exerciseInfoTemplate is the only HTML page the app serves. The description
// markdown comes from the catalog, not from users, so rendering it unescaped
// is safe.
var exerciseInfoTemplate = template.Must(template.New("exercise-info").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style {{.Nonce}}>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; }
dl { display: grid; grid-template-columns: max-content 1fr; gap: 0.25rem 1rem; }
dt { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<dl>
<dt>Primary muscle</dt><dd class="muscle">{{.Muscle}}</dd>
<dt>Equipment</dt><dd class="equipment">{{.Equipment}}</dd>
<dt>Difficulty</dt><dd class="difficulty">{{.Difficulty}}</dd>
<dt>Type</dt><dd class="movement-type">{{.Type}}</dd>
</dl>
<section class="description">
{{.Description}}
</section>
</body>
</html>
`))

type exerciseInfoData struct {
	Name        string
	Muscle      string
	Equipment   string
	Difficulty  string
	Type        string
	Description template.HTML
	Nonce       template.HTMLAttr
}

func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	def, ok := app.catalog.Get(r.PathValue("id"))
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "unknown exercise")
		return
	}

	var description bytes.Buffer
	if err := goldmark.Convert([]byte(def.DescriptionMarkdown), &description); err != nil {
		app.serverError(w, r, fmt.Errorf("render exercise description: %w", err))
		return
	}

	nonce := fmt.Sprintf("nonce=%q", contexthelpers.CSPNonce(r.Context()))
	data := exerciseInfoData{
		Name:        def.Name,
		Muscle:      string(def.PrimaryMuscle),
		Equipment:   string(def.Equipment),
		Difficulty:  string(def.Difficulty),
		Type:        string(def.Type),
		Description: template.HTML(description.String()), //nolint:gosec // trusted catalog markdown.
		Nonce:       template.HTMLAttr(nonce),            //nolint:gosec // nonce is server generated.
	}

	var buf bytes.Buffer
	if err := exerciseInfoTemplate.Execute(&buf, data); err != nil {
		app.serverError(w, r, fmt.Errorf("execute exercise info template: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/polls/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("polls").Funcs(template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
}).ParseFS(templateFS, "templates/*.html"))

type indexPage struct {
	Questions []models.QuestionSummary
	Message   string
}

type detailPage struct {
	Question     models.Question
	Choices      []models.Choice
	ErrorMessage string
}

type resultsPage struct {
	Question   models.Question
	Choices    []models.Choice
	TotalVotes int
}

// renderPage executes the named template into a buffer first so a template
// error still produces a clean 500
func renderPage(w http.ResponseWriter, statusCode int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "template", name, "error", err)
	}
}

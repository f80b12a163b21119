package routes

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Ehudaviv/Ofra-CV-Site/server/request_context"
	"github.com/Ehudaviv/Ofra-CV-Site/server/template"
)

// ErrorData is the data for the themed error page.
type ErrorData struct {
	StatusCode int
	Error      error
}

// ErrorPage renders an error page.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	rc := request_context.FromRequest(r)

	pageData := ErrorData{
		StatusCode: rc.StatusCode,
		Error:      rc.RequestError,
	}

	err := deps.Renderer.Render(w, r, "error", template.TemplateData{
		Title: "error.title",
		Data:  pageData,
	})
	if err != nil {
		log.Err(err).Msg("Failed to render the error page")
	}
}

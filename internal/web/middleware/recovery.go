package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/pokerledger/internal/middleware"
)

// Recovery creates panic recovery middleware for the ledger page.
// htmx requests get a bare 500; full page loads get an error page.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	if r.Header.Get("HX-Request") == "true" {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Something went wrong</h1>
<p>Reload the page to continue.</p>
<p><a href="/">Back to the table</a></p>
</body>
</html>`))
}

// Package swaggerkit provides helpers to mount Swagger UI and the JSON spec
package swaggerkit

import (
	"net/http"

	phttp "postanalyzer/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Path is where the UI is served
const Path = "/docs"

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	// "/docs/" is stripped to "/docs" by the slash middleware, so point at the page itself
	r.Get(Path, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, Path+"/index.html", http.StatusFound)
	})
	r.Get(Path+"/doc.json", serveDocJSON())
	r.Handle(Path+"/*", httpSwagger.Handler(
		httpSwagger.URL(Path+"/doc.json"),
	))
}

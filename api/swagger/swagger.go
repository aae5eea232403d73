// Package swagger embeds the OpenAPI document of the user API and serves it
// together with the Swagger UI.
package swagger

import (
	_ "embed"
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// DocPath is the path the OpenAPI document is served under.
const DocPath = "/swagger/doc.json"

//go:embed doc.json
var doc []byte

// Doc returns the OpenAPI document.
func Doc() []byte {
	return doc
}

// Handler serves the embedded document at DocPath and the Swagger UI for
// every other path below /swagger/.
func Handler() http.HandlerFunc {
	ui := httpSwagger.Handler(httpSwagger.URL(DocPath))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/doc.json") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write(doc)
			return
		}
		ui(w, r)
	}
}

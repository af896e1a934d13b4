package landing

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed pages
var pagesFS embed.FS

// Routes registers the landing pages on an existing router: the brand index
// at / and one page per brand at /{brand}.
func Routes() func(chi.Router) {
	pages, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		panic(err)
	}

	return func(r chi.Router) {
		r.Get("/", servePage(pages, "index.html"))
		r.Get("/{brand}", func(w http.ResponseWriter, req *http.Request) {
			name := chi.URLParam(req, "brand") + ".html"
			if _, err := fs.Stat(pages, name); err != nil {
				http.NotFound(w, req)
				return
			}
			servePage(pages, name)(w, req)
		})
	}
}

// Router builds a standalone router with the landing routes.
func Router() chi.Router {
	r := chi.NewRouter()
	Routes()(r)
	return r
}

func servePage(pages fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, err := fs.ReadFile(pages, name)
		if err != nil {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(body)
	}
}

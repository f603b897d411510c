package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// StaticSite serves the built client bundle. Paths that do not match a file fall
// back to index.html so client-side routes resolve. Without an index.html they 404.
func StaticSite(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if strings.HasPrefix(name, "/api/") {
			http.NotFound(w, r)
			return
		}
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		// Directories never list; they and unknown paths get index.html.
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}

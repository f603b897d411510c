package handler

import "net/http"

// RouterConfig holds the handlers and options mounted by NewRouter.
type RouterConfig struct {
	Handler *Handler
	Contact *ContactHandler
	// StaticDir is the built client bundle; empty disables static serving.
	StaticDir string
}

// NewRouter wires every route and the middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", cfg.Handler.Health)
	mux.HandleFunc("POST /api/contact", cfg.Contact.Submit)
	mux.HandleFunc("GET /api/contacts", cfg.Contact.List)

	if cfg.StaticDir != "" {
		mux.Handle("GET /", StaticSite(cfg.StaticDir))
	}

	var h http.Handler = mux
	h = cfg.Handler.CORS(h)
	h = SecurityHeaders(h)
	h = Recover(h)
	h = RequestLogger(h)
	return h
}

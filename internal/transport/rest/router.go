package rest

import "net/http"

// NewRouter registers the health and lexicon endpoints on a new mux.
func NewRouter(lex *LexiconHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/v1/synsets/{id}", lex.Synset)
	mux.HandleFunc("GET /api/v1/words/{word}", lex.Word)
	mux.HandleFunc("GET /api/v1/words/{word}/senses", lex.WordSenses)
	mux.HandleFunc("GET /api/v1/concepts/{term}", lex.Concept)
	mux.HandleFunc("GET /api/v1/exceptions/{pos}/{form}", lex.Exception)
	mux.HandleFunc("GET /api/v1/multiwords/{head}", lex.MultiWords)
	mux.HandleFunc("GET /api/v1/report", lex.Report)

	return mux
}

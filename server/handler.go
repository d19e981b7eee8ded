package server

import (
	"io"
	"net/http"
)

// Greeting is the body served on the root path.
const Greeting = "Hello from the Ferovinum frontend!"

type (
	handler struct {
		m *http.ServeMux
	}
)

func NewHandler() *handler {
	h := &handler{
		m: http.NewServeMux(),
	}
	h.m.HandleFunc("/{$}", h.greet)
	return h
}

func (h *handler) greet(w http.ResponseWriter, r *http.Request) {
	// unmatched methods are treated like unmatched paths
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, Greeting)
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.m.ServeHTTP(w, r)
}

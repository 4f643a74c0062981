package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a ServeMux exposing the net/http/pprof handlers. The API
// server mounts it under /debug/pprof/ so profiles stay reachable even when
// the tool routes are the only public surface.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}

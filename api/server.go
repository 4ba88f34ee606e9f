package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/matt-g-everett/logocube/scene"
	"github.com/matt-g-everett/logocube/stream"
	"go.uber.org/zap"
)

// Api serves the latest mesh state and accepts remote pointer presses.
type Api struct {
	source scene.StateSource
	inbox  chan<- scene.PointerEvent
	log    *zap.Logger
}

// NewApi creates an instance of an Api.
func NewApi(source scene.StateSource, inbox chan<- scene.PointerEvent, logger *zap.Logger) *Api {
	a := new(Api)
	a.source = source
	a.inbox = inbox
	a.log = logger
	return a
}

// Handler returns the routes of the API.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /state", a.handleState)
	mux.HandleFunc("POST /pointer", a.handlePointer)
	return mux
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.source.Snapshot()); err != nil {
		a.log.Warn("Encoding state failed", zap.Error(err))
	}
}

func (a *Api) handlePointer(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<10))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ev, err := stream.ParsePointer(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ev.Source = "http"
	if !scene.Offer(a.inbox, ev) {
		http.Error(w, "pointer inbox full", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.log.Info("Listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Package server exposes the transaction table to other local
// processes as a read-only HTTP JSON surface. No mutation verbs are
// accepted.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/storage"
)

// transactionJSON mirrors the Transaction fields exactly; note is
// always a string, defaulted to empty, never null.
type transactionJSON struct {
	ID         int64  `json:"id"`
	Amount     int64  `json:"amount"`
	Type       string `json:"type"`
	CategoryID int64  `json:"categoryId"`
	Note       string `json:"note"`
	Date       string `json:"date"`
	CreatedAt  string `json:"createdAt"`
}

func toJSON(txn model.Transaction) transactionJSON {
	return transactionJSON{
		ID:         txn.ID,
		Amount:     txn.Amount,
		Type:       string(txn.Type),
		CategoryID: txn.CategoryID,
		Note:       txn.Note,
		Date:       txn.Date.String(),
		CreatedAt:  txn.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Server serves the read-only query surface.
type Server struct {
	store *storage.Store
	addr  string
}

// New creates a server over the given store.
func New(store *storage.Store, addr string) *Server {
	return &Server{store: store, addr: addr}
}

// Handler builds the route table. Anything but GET is rejected with
// 405.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /transactions", s.handleList)
	mux.HandleFunc("GET /transactions/{id}", s.handleGet)
	mux.HandleFunc("/transactions", methodNotAllowed)
	mux.HandleFunc("/transactions/{id}", methodNotAllowed)
	return mux
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("query server listening", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		txns []model.Transaction
		err  error
	)
	fromStr, toStr := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if fromStr != "" || toStr != "" {
		from, to, perr := parseRange(fromStr, toStr)
		if perr != nil {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		txns, err = s.store.GetTransactionsInRange(ctx, from, to)
	} else {
		txns, err = s.store.GetAllTransactions(ctx)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, common.UserMessage(err))
		return
	}

	out := make([]transactionJSON, 0, len(txns))
	for _, txn := range txns {
		out = append(out, toJSON(txn))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	txn, err := s.store.GetTransactionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, common.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, toJSON(*txn))
}

// parseRange resolves from/to query parameters; a missing bound is
// open-ended.
func parseRange(fromStr, toStr string) (model.Date, model.Date, error) {
	from := model.NewDate(1, time.January, 1)
	to := model.NewDate(9999, time.December, 31)

	var err error
	if fromStr != "" {
		if from, err = model.ParseDate(fromStr); err != nil {
			return model.Date{}, model.Date{}, fmt.Errorf("invalid from parameter: %w", err)
		}
	}
	if toStr != "" {
		if to, err = model.ParseDate(toStr); err != nil {
			return model.Date{}, model.Date{}, fmt.Errorf("invalid to parameter: %w", err)
		}
	}
	return from, to, nil
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "read-only surface: only GET is supported")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

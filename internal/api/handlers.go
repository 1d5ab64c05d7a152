package api

import (
	"encoding/json"
	"net/http"
	"time"

	applog "github.com/susu3304/cajachica/internal/log"
)

type totalResponse struct {
	Total string `json:"total"`
}

type transactionResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleTotal(w http.ResponseWriter, r *http.Request) {
	total, err := a.ledger.Total(r.Context())
	if err != nil {
		a.log.ErrorContext(r.Context(), "failed to read total", applog.FieldError, err)
		http.Error(w, "failed to read total", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, totalResponse{Total: total.StringFixed(2)})
}

func (a *API) handleTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := a.ledger.Transactions(r.Context())
	if err != nil {
		a.log.ErrorContext(r.Context(), "failed to list transactions", applog.FieldError, err)
		http.Error(w, "failed to list transactions", http.StatusInternalServerError)
		return
	}

	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, transactionResponse{
			ID:          tx.ID,
			CreatedAt:   tx.CreatedAt,
			Amount:      tx.Amount.StringFixed(2),
			Description: tx.Description,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

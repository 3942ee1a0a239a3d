package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

type movementResponse struct {
	ID         int64       `json:"id"`
	AccountID  int64       `json:"cuentaId"`
	Kind       string      `json:"tipo"`
	Amount     json.Number `json:"valor"`
	OccurredAt time.Time   `json:"fecha"`
}

type statementResponse struct {
	Statement string `json:"extracto"`
}

// GetBalance handles GET /cuentas/{cuentaId}/saldo.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(mux.Vars(r)["cuentaId"])
	if err != nil {
		writeError(w, err)
		return
	}

	balance, err := h.accountService.GetBalance(accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Balance: jsonNumber(balance)})
}

// GetMovements handles GET /cuentas/{cuentaId}/movimientos.
func (h *AccountHandler) GetMovements(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(mux.Vars(r)["cuentaId"])
	if err != nil {
		writeError(w, err)
		return
	}

	movements, err := h.accountService.GetMovements(accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMovementResponses(movements))
}

// GetStatement handles GET /cuentas/{cuentaId}/extracto?mes=&año=.
func (h *AccountHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(mux.Vars(r)["cuentaId"])
	if err != nil {
		writeError(w, err)
		return
	}

	month, year, err := parseMonthYear(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	statement, err := h.accountService.MonthlyStatement(accountID, month, year)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statementResponse{Statement: statement})
}

func toMovementResponses(movements []domain.Movement) []movementResponse {
	out := make([]movementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, movementResponse{
			ID:         m.ID,
			AccountID:  m.AccountID,
			Kind:       string(m.Kind),
			Amount:     jsonNumber(m.Amount),
			OccurredAt: m.OccurredAt,
		})
	}
	return out
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
	"bluesoft-bank/internal/service"
)

type TransactionHandler struct {
	accountService *service.AccountService
}

func NewTransactionHandler(accountService *service.AccountService) *TransactionHandler {
	return &TransactionHandler{
		accountService: accountService,
	}
}

type transactionRequest struct {
	Kind   string      `json:"tipo"`
	Amount json.Number `json:"valor"`
}

type balanceResponse struct {
	Balance json.Number `json:"saldo"`
}

// Execute handles POST /cuentas/{cuentaId}/transacciones. On success it
// re-reads the account and returns the resulting balance.
func (h *TransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(mux.Vars(r)["cuentaId"])
	if err != nil {
		writeError(w, err)
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.ErrInvalidParameters)
		return
	}

	kind := domain.MovementKind(req.Kind)
	if !kind.Valid() {
		writeError(w, errors.NewAppError(errors.InvalidMovementKind, "Tipo de transacción no válido"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		writeError(w, errors.ErrInvalidParameters)
		return
	}
	if !amount.IsPositive() {
		writeError(w, errors.NewAppError(errors.InvalidAmount, "El valor de la transacción debe ser positivo"))
		return
	}

	if err := h.accountService.ExecuteTransaction(accountID, kind, amount); err != nil {
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

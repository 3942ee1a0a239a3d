package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/errors"
)

// errorResponse is the uniform failure body: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewAppError(errors.StoreError, "Error inesperado").WithDetails(err.Error())
	}

	writeJSON(w, appErr.HTTPStatus(), errorResponse{Error: appErr.Message})
}

// jsonNumber renders a decimal as a bare JSON number instead of a quoted
// string.
func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// parseMonthYear reads the mes/año query parameters. Both are required; mes
// must be 1-12.
func parseMonthYear(query url.Values) (int, int, error) {
	mes := query.Get("mes")
	año := query.Get("año")
	if mes == "" || año == "" {
		return 0, 0, errors.ErrInvalidParameters
	}

	month, err := strconv.Atoi(mes)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.ErrInvalidParameters
	}

	year, err := strconv.Atoi(año)
	if err != nil || year <= 0 {
		return 0, 0, errors.ErrInvalidParameters
	}

	return month, year, nil
}

func parseAccountID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidParameters
	}
	return id, nil
}

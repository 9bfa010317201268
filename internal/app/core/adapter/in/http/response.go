package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// errInternal 未預期錯誤的佔位值，對應 500
var errInternal = errors.New("internal server error")

// 交易種類標籤 (回應用)
const (
	transactionWithdrawal     = "withdrawal"
	transactionDeposit        = "deposit"
	transactionAccountCreated = "account_created"
)

// balanceResponse 查詢餘額回應
type balanceResponse struct {
	Identifier string  `json:"identifier"`
	Balance    float64 `json:"balance"`
}

// transactionResponse 存提款成功回應
type transactionResponse struct {
	Identifier  string  `json:"identifier"`
	Balance     float64 `json:"balance"`
	Transaction string  `json:"transaction"`
	Amount      float64 `json:"amount"`
}

// createResponse 建立帳戶成功回應
type createResponse struct {
	Identifier  string  `json:"identifier"`
	Balance     float64 `json:"balance"`
	Transaction string  `json:"transaction"`
}

// errorResponse 統一錯誤回應格式
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	Method    string `json:"method"`
}

// writeJSON 統一輸出 JSON 回應
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorStatus 把領域錯誤對應到 HTTP 狀態碼與穩定的 API 錯誤碼。
// 沒對應到的一律視為未預期錯誤 → 500。
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusBadRequest, "INVALID_ACCOUNT_FORMAT"
	case errors.Is(err, domain.ErrInvalidAmount):
		// 缺欄位、型別不符、非正數、非有限數統一用同一個碼
		return http.StatusBadRequest, "INVALID_AMOUNT"
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusBadRequest, "VALIDATION_FAILED"
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		return http.StatusBadRequest, "ACCOUNT_ALREADY_EXISTS"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, "INSUFFICIENT_FUNDS"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "ACCOUNT_NOT_FOUND"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// writeError 統一輸出錯誤回應
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// 不把內部錯誤細節洩漏給呼叫端
		message = "internal server error"
	}
	writeJSON(w, status, errorResponse{
		Error:     message,
		Code:      code,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      r.URL.Path,
		Method:    r.Method,
	})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// 請求本體用指標欄位區分「沒給」與「給了零值」，
// 驗證在邊界做完一次，往內傳的都是已驗證的值

// amountRequest 存提款請求本體
type amountRequest struct {
	Amount *float64 `json:"amount"`
}

// createAccountRequest 建立帳戶請求本體
type createAccountRequest struct {
	Identifier     *string  `json:"identifier"`
	InitialBalance *float64 `json:"initial_balance"`
}

// decodeAmount 解析 {amount}。缺漏、型別不符 (JSON 的 NaN/Infinity
// 本來就不是合法字面值，會在這裡被擋下) 一律回 ErrInvalidAmount。
func decodeAmount(r *http.Request) (float64, error) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, domain.ErrInvalidAmount
	}
	if req.Amount == nil {
		return 0, domain.ErrInvalidAmount
	}
	return *req.Amount, nil
}

// decodeCreateAccount 解析 {identifier, initial_balance}
func decodeCreateAccount(r *http.Request) (string, float64, error) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", 0, domain.ErrInvalidInput
	}
	if req.Identifier == nil {
		return "", 0, domain.ErrInvalidInput
	}
	if req.InitialBalance == nil {
		return "", 0, domain.ErrValidationFailed
	}
	return *req.Identifier, *req.InitialBalance, nil
}

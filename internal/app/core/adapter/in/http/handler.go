package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// Handler 是 REST 介面層 (Driving Adapter)：
// 解析與驗證請求 → 呼叫 BankUseCase → 輸出標準化 JSON
type Handler struct {
	core *usecase.BankUseCase
}

func NewHandler(core *usecase.BankUseCase) *Handler {
	return &Handler{
		core: core,
	}
}

// GetBalance GET /accounts/{id}/balance
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	account, err := h.core.GetBalance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{
		Identifier: account.ID,
		Balance:    account.Balance,
	})
}

// Withdraw POST /accounts/{id}/withdraw
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	amount, err := decodeAmount(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	account, err := h.core.Withdraw(r.Context(), mux.Vars(r)["id"], amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionResponse{
		Identifier:  account.ID,
		Balance:     account.Balance,
		Transaction: transactionWithdrawal,
		// 金額跟餘額一樣，序列化時固定捨入到小數點後 2 位
		Amount: domain.RoundCurrency(amount),
	})
}

// Deposit POST /accounts/{id}/deposit
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	amount, err := decodeAmount(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	account, err := h.core.Deposit(r.Context(), mux.Vars(r)["id"], amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionResponse{
		Identifier:  account.ID,
		Balance:     account.Balance,
		Transaction: transactionDeposit,
		Amount:      domain.RoundCurrency(amount),
	})
}

// CreateAccount POST /accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	identifier, initialBalance, err := decodeCreateAccount(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	account, err := h.core.CreateAccount(r.Context(), identifier, initialBalance)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{
		Identifier:  account.ID,
		Balance:     account.Balance,
		Transaction: transactionAccountCreated,
	})
}

// DeleteAccount DELETE /accounts/{id}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.core.DeleteAccount(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, domain.ErrAccountNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAccounts GET /accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.core.ListAccounts(r.Context())
	out := make([]balanceResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, balanceResponse{Identifier: a.ID, Balance: a.Balance})
	}
	writeJSON(w, http.StatusOK, out)
}

// Health GET /health
// 可供監控或 Docker liveness probe 使用
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"accounts": h.core.CountAccounts(r.Context()),
	})
}

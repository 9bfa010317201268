package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// BankUseCase 是核心業務邏輯層：
// 組合 Validator 與 Store，在碰 Store 之前把輸入驗完
type BankUseCase struct {
	store Store
}

func NewBankUseCase(store Store) *BankUseCase {
	return &BankUseCase{
		store: store,
	}
}

// checkIdentifier 共用的識別碼前置檢查：先擋空字串，再擋格式
func checkIdentifier(identifier string) (string, error) {
	id := domain.NormalizeIdentifier(identifier)
	if id == "" {
		return "", domain.ErrInvalidInput
	}
	if !domain.IsValidIdentifier(id) {
		return "", domain.ErrInvalidFormat
	}
	return id, nil
}

// GetBalance 查詢帳戶餘額
func (c *BankUseCase) GetBalance(ctx context.Context, identifier string) (domain.Account, error) {
	id, err := checkIdentifier(identifier)
	if err != nil {
		return domain.Account{}, err
	}
	account, ok := c.store.Get(ctx, id)
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

// Withdraw 提款：驗證 → 讀取 → 計算 → 寫回，整段交給 Store.Apply
// 在單一臨界區內完成，失敗不留部分狀態
func (c *BankUseCase) Withdraw(ctx context.Context, identifier string, amount float64) (domain.Account, error) {
	id, err := checkIdentifier(identifier)
	if err != nil {
		return domain.Account{}, err
	}
	if !domain.IsValidAmount(amount) {
		return domain.Account{}, domain.ErrInvalidAmount
	}
	return c.store.Apply(ctx, id, func(account domain.Account) (domain.Account, error) {
		return account.Withdraw(amount)
	})
}

// Deposit 存款：流程同 Withdraw，但不需檢查餘額
func (c *BankUseCase) Deposit(ctx context.Context, identifier string, amount float64) (domain.Account, error) {
	id, err := checkIdentifier(identifier)
	if err != nil {
		return domain.Account{}, err
	}
	if !domain.IsValidAmount(amount) {
		return domain.Account{}, domain.ErrInvalidAmount
	}
	return c.store.Apply(ctx, id, func(account domain.Account) (domain.Account, error) {
		return account.Deposit(amount)
	})
}

// CreateAccount 建立帳戶
func (c *BankUseCase) CreateAccount(ctx context.Context, identifier string, initialBalance float64) (domain.Account, error) {
	id, err := checkIdentifier(identifier)
	if err != nil {
		return domain.Account{}, err
	}
	if !domain.IsValidBalance(initialBalance) {
		return domain.Account{}, domain.ErrValidationFailed
	}
	return c.store.Create(ctx, id, initialBalance)
}

// DeleteAccount 刪除帳戶，回傳是否真的刪了一筆
func (c *BankUseCase) DeleteAccount(ctx context.Context, identifier string) (bool, error) {
	id, err := checkIdentifier(identifier)
	if err != nil {
		return false, err
	}
	return c.store.Delete(ctx, id), nil
}

// ListAccounts 回傳所有帳戶快照
func (c *BankUseCase) ListAccounts(ctx context.Context) []domain.Account {
	return c.store.List(ctx)
}

// CountAccounts 回傳帳戶總數
func (c *BankUseCase) CountAccounts(ctx context.Context) int {
	return c.store.Count(ctx)
}

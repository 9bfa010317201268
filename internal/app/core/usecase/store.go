package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Store 是帳戶存放的唯一出口 (Driven Port)
// 實作必須保證：
//   - 所有回傳的 Account 都是值拷貝，呼叫端改不到內部狀態
//   - 每次變更對單一集合而言是原子的，不會觀察到部分寫入
//   - 進 Store 的帳戶一律通過 domain.ValidateAccount
type Store interface {
	// Get 查詢帳戶，識別碼先正規化；不存在回傳 false，不是錯誤
	Get(ctx context.Context, identifier string) (domain.Account, bool)
	// Create 建立帳戶，重複回傳 ErrAccountAlreadyExists，
	// 結構不合法回傳 ErrValidationFailed
	Create(ctx context.Context, identifier string, initialBalance float64) (domain.Account, error)
	// Update 整筆覆寫既有帳戶，餘額在落地前捨入；
	// 不存在回傳 ErrAccountNotFound
	Update(ctx context.Context, account domain.Account) error
	// Apply 在單一臨界區內完成 read-modify-write：
	// 讀出帳戶、執行 mutate、把結果寫回，整段不會與其他變更交錯。
	// 原始環境靠單執行緒事件迴圈拿到這個保證，這裡明確提供。
	// 帳戶不存在回傳 ErrAccountNotFound；mutate 的錯誤原樣帶出且不寫入。
	Apply(ctx context.Context, identifier string, mutate func(domain.Account) (domain.Account, error)) (domain.Account, error)
	// Delete 回傳是否真的刪除了一筆；不存在回傳 false，不是錯誤
	Delete(ctx context.Context, identifier string) bool
	// List 回傳當下所有帳戶的快照拷貝
	List(ctx context.Context) []domain.Account
	// Count 回傳帳戶總數
	Count(ctx context.Context) int
}

// SeedSource 啟動時的初始帳戶來源 (設定檔或 MySQL)
type SeedSource interface {
	LoadAllAccounts(ctx context.Context) ([]domain.Account, error)
}

package memory

import (
	"fmt"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// table 是帳戶集合的核心實作，本身不做同步，
// 由 MutexStore (鎖) 或 SerialStore (單一 goroutine) 負責序列化存取。
// map 的值是 domain.Account 值型別，讀寫天然就是拷貝。
type table struct {
	accounts map[string]domain.Account
}

// newTable 以初始帳戶建立集合；種子資料必須全部通過結構檢查且不重複，
// 否則直接回報錯誤讓啟動失敗，不讓半合法狀態進入系統
func newTable(seed []domain.Account) (*table, error) {
	t := &table{accounts: make(map[string]domain.Account, len(seed))}
	for _, a := range seed {
		account := domain.NewAccount(a.ID, a.Balance)
		if result := domain.ValidateAccount(account); !result.Valid {
			return nil, fmt.Errorf("invalid seed account %q: %v", a.ID, result.Errors)
		}
		if _, ok := t.accounts[account.ID]; ok {
			return nil, fmt.Errorf("duplicate seed account %q", account.ID)
		}
		t.accounts[account.ID] = account
	}
	return t, nil
}

func (t *table) get(identifier string) (domain.Account, bool) {
	account, ok := t.accounts[domain.NormalizeIdentifier(identifier)]
	return account, ok
}

func (t *table) create(identifier string, initialBalance float64) (domain.Account, error) {
	account := domain.NewAccount(identifier, initialBalance)
	if result := domain.ValidateAccount(account); !result.Valid {
		return domain.Account{}, domain.ErrValidationFailed
	}
	if _, ok := t.accounts[account.ID]; ok {
		return domain.Account{}, domain.ErrAccountAlreadyExists
	}
	t.accounts[account.ID] = account
	return account, nil
}

func (t *table) update(account domain.Account) error {
	normalized := domain.NewAccount(account.ID, account.Balance)
	if result := domain.ValidateAccount(normalized); !result.Valid {
		return domain.ErrValidationFailed
	}
	if _, ok := t.accounts[normalized.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	t.accounts[normalized.ID] = normalized
	return nil
}

func (t *table) apply(identifier string, mutate func(domain.Account) (domain.Account, error)) (domain.Account, error) {
	current, ok := t.accounts[domain.NormalizeIdentifier(identifier)]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	mutated, err := mutate(current)
	if err != nil {
		return domain.Account{}, err
	}
	if err := t.update(mutated); err != nil {
		return domain.Account{}, err
	}
	return t.accounts[domain.NormalizeIdentifier(mutated.ID)], nil
}

func (t *table) delete(identifier string) bool {
	id := domain.NormalizeIdentifier(identifier)
	if _, ok := t.accounts[id]; !ok {
		return false
	}
	delete(t.accounts, id)
	return true
}

func (t *table) list() []domain.Account {
	out := make([]domain.Account, 0, len(t.accounts))
	for _, a := range t.accounts {
		out = append(out, a)
	}
	return out
}

func (t *table) count() int {
	return len(t.accounts)
}

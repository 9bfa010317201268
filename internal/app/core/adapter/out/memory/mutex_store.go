package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// MutexStore 是使用 RWMutex 實現的帳戶 Store (Level 1)
//
// 原始執行環境靠單執行緒事件迴圈取得隱含的原子性；
// Go 有真平行，所以每個操作都在鎖的臨界區內完成整個 read-modify-write，
// 避免 lost update。
//
// 結構:
//
//	table: 帳戶集合核心
//	mu: RWMutex 保護 table
type MutexStore struct {
	table *table
	mu    sync.RWMutex
}

// NewMutexStore 建立一個新的 MutexStore 實例
//
// 參數:
//
//	seed: 初始帳戶資料 (可為 nil)
//
// 回傳:
//
//	*MutexStore: MutexStore 實例
//	error: 種子資料不合法時的初始化錯誤
func NewMutexStore(seed []domain.Account) (*MutexStore, error) {
	t, err := newTable(seed)
	if err != nil {
		return nil, err
	}
	return &MutexStore{table: t}, nil
}

// Get 查詢帳戶的當前快照
func (m *MutexStore) Get(ctx context.Context, identifier string) (domain.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table.get(identifier)
}

// Create 建立帳戶
//
// 回傳:
//
//	domain.Account: 落地後的帳戶拷貝 (餘額已捨入)
//	error: ErrAccountAlreadyExists / ErrValidationFailed
func (m *MutexStore) Create(ctx context.Context, identifier string, initialBalance float64) (domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table.create(identifier, initialBalance)
}

// Update 整筆覆寫既有帳戶
//
// 回傳:
//
//	error: ErrAccountNotFound / ErrValidationFailed
func (m *MutexStore) Update(ctx context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table.update(account)
}

// Apply 在同一個臨界區內完成整段 read-modify-write
//
// 回傳:
//
//	domain.Account: 落地後的帳戶拷貝
//	error: ErrAccountNotFound / mutate 回傳的錯誤
func (m *MutexStore) Apply(ctx context.Context, identifier string, mutate func(domain.Account) (domain.Account, error)) (domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table.apply(identifier, mutate)
}

// Delete 刪除帳戶，回傳是否真的刪除了一筆
func (m *MutexStore) Delete(ctx context.Context, identifier string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table.delete(identifier)
}

// List 回傳所有帳戶的快照拷貝
func (m *MutexStore) List(ctx context.Context) []domain.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table.list()
}

// Count 回傳帳戶總數
func (m *MutexStore) Count(ctx context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table.count()
}

var _ usecase.Store = (*MutexStore)(nil)

package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// 兩個實作共用同一組行為測試
func forEachStore(t *testing.T, seed []domain.Account, fn func(t *testing.T, store usecase.Store)) {
	t.Run("mutex", func(t *testing.T) {
		store, err := memory.NewMutexStore(seed)
		require.NoError(t, err)
		fn(t, store)
	})
	t.Run("serial", func(t *testing.T) {
		store, err := memory.NewSerialStore(seed)
		require.NoError(t, err)
		t.Cleanup(store.Close)
		fn(t, store)
	})
}

func TestStoreCreateAndGet(t *testing.T) {
	forEachStore(t, nil, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		account, err := store.Create(ctx, " 123456789 ", 100.005)
		require.NoError(t, err)
		assert.Equal(t, "123456789", account.ID)
		assert.InDelta(t, 100.01, account.Balance, 1e-9)

		got, ok := store.Get(ctx, "123456789")
		require.True(t, ok)
		assert.InDelta(t, 100.01, got.Balance, 1e-9)

		// 查找前識別碼會先正規化
		_, ok = store.Get(ctx, "  123456789  ")
		assert.True(t, ok)

		_, ok = store.Get(ctx, "999999999")
		assert.False(t, ok)
	})
}

func TestStoreCreateDuplicate(t *testing.T) {
	forEachStore(t, nil, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		_, err := store.Create(ctx, "123456789", 100)
		require.NoError(t, err)

		_, err = store.Create(ctx, "123456789", 50)
		assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

		// 空白差異不構成不同帳戶
		_, err = store.Create(ctx, " 123456789", 50)
		assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)
	})
}

func TestStoreCreateInvalid(t *testing.T) {
	forEachStore(t, nil, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		_, err := store.Create(ctx, "12345", 100)
		assert.ErrorIs(t, err, domain.ErrValidationFailed)

		_, err = store.Create(ctx, "123456789", -1)
		assert.ErrorIs(t, err, domain.ErrValidationFailed)

		// 失敗的建立不留任何狀態
		assert.Equal(t, 0, store.Count(ctx))
	})
}

func TestStoreUpdate(t *testing.T) {
	seed := []domain.Account{{ID: "123456789", Balance: 100}}
	forEachStore(t, seed, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		err := store.Update(ctx, domain.Account{ID: "123456789", Balance: 250.126})
		require.NoError(t, err)
		got, ok := store.Get(ctx, "123456789")
		require.True(t, ok)
		assert.InDelta(t, 250.13, got.Balance, 1e-9)

		err = store.Update(ctx, domain.Account{ID: "999999999", Balance: 10})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)

		err = store.Update(ctx, domain.Account{ID: "123456789", Balance: -1})
		assert.ErrorIs(t, err, domain.ErrValidationFailed)
		// 失敗的更新不改變既有狀態
		got, _ = store.Get(ctx, "123456789")
		assert.InDelta(t, 250.13, got.Balance, 1e-9)
	})
}

func TestStoreApply(t *testing.T) {
	seed := []domain.Account{{ID: "123456789", Balance: 1000}}
	forEachStore(t, seed, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		account, err := store.Apply(ctx, "123456789", func(a domain.Account) (domain.Account, error) {
			return a.Withdraw(250.123)
		})
		require.NoError(t, err)
		assert.InDelta(t, 749.88, account.Balance, 1e-9)

		_, err = store.Apply(ctx, "999999999", func(a domain.Account) (domain.Account, error) {
			return a, nil
		})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)

		// mutate 失敗時不寫入
		_, err = store.Apply(ctx, "123456789", func(a domain.Account) (domain.Account, error) {
			return a.Withdraw(10000)
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		got, _ := store.Get(ctx, "123456789")
		assert.InDelta(t, 749.88, got.Balance, 1e-9)
	})
}

func TestStoreApplyConcurrent(t *testing.T) {
	seed := []domain.Account{{ID: "123456789", Balance: 0}}
	forEachStore(t, seed, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		const workers = 50
		const perWorker = 20
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				for j := 0; j < perWorker; j++ {
					_, err := store.Apply(ctx, "123456789", func(a domain.Account) (domain.Account, error) {
						return a.Deposit(1)
					})
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()

		// 沒有 lost update：每一筆存款都算數
		got, _ := store.Get(ctx, "123456789")
		assert.InDelta(t, float64(workers*perWorker), got.Balance, 1e-9)
	})
}

func TestStoreDelete(t *testing.T) {
	seed := []domain.Account{{ID: "123456789", Balance: 100}}
	forEachStore(t, seed, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		assert.True(t, store.Delete(ctx, "123456789"))
		assert.False(t, store.Delete(ctx, "123456789"))
		assert.False(t, store.Delete(ctx, "not-an-id"))
		assert.Equal(t, 0, store.Count(ctx))
	})
}

func TestStoreListAndCount(t *testing.T) {
	seed := []domain.Account{
		{ID: "123456789", Balance: 100},
		{ID: "987654321", Balance: 200},
	}
	forEachStore(t, seed, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		assert.Equal(t, 2, store.Count(ctx))
		list := store.List(ctx)
		assert.Len(t, list, 2)

		// List 回傳的是快照拷貝，改它不影響 Store
		list[0].Balance = 99999
		for _, a := range store.List(ctx) {
			assert.Less(t, a.Balance, 99999.0)
		}
	})
}

func TestStoreValueSemantics(t *testing.T) {
	seed := []domain.Account{{ID: "123456789", Balance: 100}}
	forEachStore(t, seed, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		got, _ := store.Get(ctx, "123456789")
		got.Balance = 99999

		again, _ := store.Get(ctx, "123456789")
		assert.InDelta(t, 100, again.Balance, 1e-9)
	})
}

func TestStoreAccountIsolation(t *testing.T) {
	seed := []domain.Account{
		{ID: "123456789", Balance: 100},
		{ID: "987654321", Balance: 200},
	}
	forEachStore(t, seed, func(t *testing.T, store usecase.Store) {
		ctx := context.Background()

		_, err := store.Apply(ctx, "123456789", func(a domain.Account) (domain.Account, error) {
			return a.Withdraw(50)
		})
		require.NoError(t, err)

		other, _ := store.Get(ctx, "987654321")
		assert.InDelta(t, 200, other.Balance, 1e-9)
	})
}

func TestSerialStoreAfterClose(t *testing.T) {
	store, err := memory.NewSerialStore([]domain.Account{{ID: "123456789", Balance: 100}})
	require.NoError(t, err)

	store.Close()
	// 重複關閉是 no-op
	store.Close()

	ctx := context.Background()

	// 關閉後的操作回報 ErrStoreClosed，不會 panic
	_, err = store.Create(ctx, "987654321", 10)
	assert.ErrorIs(t, err, memory.ErrStoreClosed)

	err = store.Update(ctx, domain.Account{ID: "123456789", Balance: 10})
	assert.ErrorIs(t, err, memory.ErrStoreClosed)

	_, err = store.Apply(ctx, "123456789", func(a domain.Account) (domain.Account, error) {
		return a.Deposit(1)
	})
	assert.ErrorIs(t, err, memory.ErrStoreClosed)

	_, ok := store.Get(ctx, "123456789")
	assert.False(t, ok)
	assert.False(t, store.Delete(ctx, "123456789"))
	assert.Empty(t, store.List(ctx))
	assert.Equal(t, 0, store.Count(ctx))
}

func TestStoreRejectsInvalidSeed(t *testing.T) {
	_, err := memory.NewMutexStore([]domain.Account{{ID: "bad", Balance: 1}})
	assert.Error(t, err)

	_, err = memory.NewSerialStore([]domain.Account{
		{ID: "123456789", Balance: 1},
		{ID: " 123456789 ", Balance: 2},
	})
	assert.Error(t, err)
}

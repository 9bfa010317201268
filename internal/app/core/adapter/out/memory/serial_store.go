package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// ErrStoreClosed 對已關閉的 SerialStore 發出請求
var ErrStoreClosed = errors.New("serial store is closed")

type storeOp uint8

const (
	opGet storeOp = iota + 1
	opCreate
	opUpdate
	opApply
	opDelete
	opList
	opCount
)

// storeRequest 請求包裝channel，讓呼叫端可以等待結果
type storeRequest struct {
	Op         storeOp
	Identifier string
	Balance    float64
	Account    domain.Account
	Mutate     func(domain.Account) (domain.Account, error)
	Result     chan storeReply // 呼叫端等這個 channel
}

type storeReply struct {
	Account  domain.Account
	Accounts []domain.Account
	Found    bool
	Count    int
	Err      error
}

// SerialStore 是單一消費者 goroutine 實現的帳戶 Store (Level 2)
//
// 所有操作送進同一條輸送帶，由一個事件迴圈依抵達順序逐一處理，
// 重現原始單執行緒環境的序列化語意，不需要任何鎖。
//
// 結構:
//
//	table: 帳戶集合核心，只有事件迴圈 goroutine 會碰
//	requestChan: 輸送帶 負責接收請求
//	requestPool: Pool 減少 GC 壓力
type SerialStore struct {
	table       *table
	requestChan chan *storeRequest
	requestPool sync.Pool
	done        chan struct{}
	closeOnce   sync.Once
	// closeMu 保護 closed 與 requestChan 的關閉：
	// dispatch 持讀鎖送件，Close 持寫鎖關閉，不會對已關閉的 channel 送件
	closeMu sync.RWMutex
	closed  bool
}

// NewSerialStore 建立一個新的 SerialStore 實例並啟動事件迴圈
//
// 參數:
//
//	seed: 初始帳戶資料 (可為 nil)
//
// 回傳:
//
//	*SerialStore: SerialStore 實例
//	error: 種子資料不合法時的初始化錯誤
func NewSerialStore(seed []domain.Account) (*SerialStore, error) {
	t, err := newTable(seed)
	if err != nil {
		return nil, err
	}
	s := &SerialStore{
		table:       t,
		requestChan: make(chan *storeRequest, 1024), // Buffer 1024
		requestPool: sync.Pool{
			New: func() any {
				return &storeRequest{Result: make(chan storeReply, 1)}
			},
		},
		done: make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// run 事件迴圈：逐一消費請求，結束時通知 done
func (s *SerialStore) run() {
	defer close(s.done)
	for req := range s.requestChan {
		var reply storeReply
		switch req.Op {
		case opGet:
			reply.Account, reply.Found = s.table.get(req.Identifier)
		case opCreate:
			reply.Account, reply.Err = s.table.create(req.Identifier, req.Balance)
		case opUpdate:
			reply.Err = s.table.update(req.Account)
		case opApply:
			reply.Account, reply.Err = s.table.apply(req.Identifier, req.Mutate)
		case opDelete:
			reply.Found = s.table.delete(req.Identifier)
		case opList:
			reply.Accounts = s.table.list()
		case opCount:
			reply.Count = s.table.count()
		}
		req.Result <- reply
	}
}

// Close 停止事件迴圈並等待它結束；
// 之後的操作回傳 ErrStoreClosed (查詢類回傳零值)，不會 panic
func (s *SerialStore) Close() {
	s.closeOnce.Do(func() {
		s.closeMu.Lock()
		s.closed = true
		close(s.requestChan)
		s.closeMu.Unlock()
		<-s.done
	})
}

// dispatch 送出請求並同步等待結果
func (s *SerialStore) dispatch(req *storeRequest) storeReply {
	s.closeMu.RLock()
	if s.closed {
		s.closeMu.RUnlock()
		s.recycle(req)
		return storeReply{Err: ErrStoreClosed}
	}
	s.requestChan <- req
	s.closeMu.RUnlock()
	reply := <-req.Result
	s.recycle(req)
	return reply
}

// recycle 歸還 Pool 前清掉內容，避免舊值外洩到下一次使用
func (s *SerialStore) recycle(req *storeRequest) {
	*req = storeRequest{Result: req.Result}
	s.requestPool.Put(req)
}

// Get 查詢帳戶的當前快照
func (s *SerialStore) Get(ctx context.Context, identifier string) (domain.Account, bool) {
	req := s.requestPool.Get().(*storeRequest)
	req.Op = opGet
	req.Identifier = identifier
	reply := s.dispatch(req)
	return reply.Account, reply.Found
}

// Create 建立帳戶
func (s *SerialStore) Create(ctx context.Context, identifier string, initialBalance float64) (domain.Account, error) {
	req := s.requestPool.Get().(*storeRequest)
	req.Op = opCreate
	req.Identifier = identifier
	req.Balance = initialBalance
	reply := s.dispatch(req)
	return reply.Account, reply.Err
}

// Update 整筆覆寫既有帳戶
func (s *SerialStore) Update(ctx context.Context, account domain.Account) error {
	req := s.requestPool.Get().(*storeRequest)
	req.Op = opUpdate
	req.Account = account
	return s.dispatch(req).Err
}

// Apply 在事件迴圈內完成整段 read-modify-write，不與其他請求交錯
func (s *SerialStore) Apply(ctx context.Context, identifier string, mutate func(domain.Account) (domain.Account, error)) (domain.Account, error) {
	req := s.requestPool.Get().(*storeRequest)
	req.Op = opApply
	req.Identifier = identifier
	req.Mutate = mutate
	reply := s.dispatch(req)
	return reply.Account, reply.Err
}

// Delete 刪除帳戶，回傳是否真的刪除了一筆
func (s *SerialStore) Delete(ctx context.Context, identifier string) bool {
	req := s.requestPool.Get().(*storeRequest)
	req.Op = opDelete
	req.Identifier = identifier
	return s.dispatch(req).Found
}

// List 回傳所有帳戶的快照拷貝
func (s *SerialStore) List(ctx context.Context) []domain.Account {
	req := s.requestPool.Get().(*storeRequest)
	req.Op = opList
	return s.dispatch(req).Accounts
}

// Count 回傳帳戶總數
func (s *SerialStore) Count(ctx context.Context) int {
	req := s.requestPool.Get().(*storeRequest)
	req.Op = opCount
	return s.dispatch(req).Count
}

var _ usecase.Store = (*SerialStore)(nil)

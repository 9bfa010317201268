package mysql

import (
	"context"
	"fmt"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/mysql"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	Identifier string  `gorm:"column:identifier;primaryKey;type:varchar(12)"`
	Balance    float64 `gorm:"column:balance"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// SeedSource 在程序啟動時從 MySQL 唯讀載入初始帳戶集。
// 只讀不寫：執行期的所有變更都只存在記憶體 Store，不會回寫資料庫。
type SeedSource struct {
	client *mysql.Client
}

func NewSeedSource(client *mysql.Client) *SeedSource {
	return &SeedSource{
		client: client,
	}
}

// LoadAllAccounts 載入 accounts 表的所有帳戶
//
// 參數:
//
//	ctx: 上下文
//
// 回傳:
//
//	[]domain.Account: 全部帳戶 (已正規化、已捨入)
//	error: 查詢錯誤，或任何一筆資料未通過結構檢查
func (s *SeedSource) LoadAllAccounts(ctx context.Context) ([]domain.Account, error) {
	var rows []sqlAccount
	if err := s.client.DB().WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load seed accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		account := domain.NewAccount(row.Identifier, row.Balance)
		// 資料庫的髒資料不放行，啟動時直接失敗比帶病上線好
		if result := domain.ValidateAccount(account); !result.Valid {
			return nil, fmt.Errorf("invalid seed account %q: %v", row.Identifier, result.Errors)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

var _ usecase.SeedSource = (*SeedSource)(nil)

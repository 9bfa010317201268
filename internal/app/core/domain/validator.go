package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// 識別碼格式：去除前後空白後必須是 6~12 位 ASCII 數字
var identifierPattern = regexp.MustCompile(`^[0-9]{6,12}$`)

// NormalizeIdentifier 去除識別碼前後空白，所有查找與比對都用正規化後的值
func NormalizeIdentifier(s string) string {
	return strings.TrimSpace(s)
}

// IsValidIdentifier 檢查識別碼格式 (正規化後 6~12 位數字)
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(NormalizeIdentifier(s))
}

// IsValidBalance 餘額必須是有限數且 >= 0
func IsValidBalance(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n >= 0
}

// IsValidAmount 交易金額必須是有限數且嚴格 > 0 (0 與負數都拒絕)
func IsValidAmount(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n > 0
}

// RoundCurrency 捨入到小數點後 2 位，採 round-half-away-from-zero
// (0.005 → 0.01、100.126 → 100.13)。純函式，冪等，非有限數原樣回傳。
func RoundCurrency(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	return decimal.NewFromFloat(n).Round(2).InexactFloat64()
}

// ValidationResult 結構檢查結果：收集所有錯誤訊息，不在第一個錯誤就中斷，
// 讓 API 一次回報所有問題
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateAccount 對帳戶做完整結構檢查
//
// 回傳:
//
//	ValidationResult: Valid 為 true 時 Errors 為空
func ValidateAccount(a Account) ValidationResult {
	var errs []string
	if !IsValidIdentifier(a.ID) {
		errs = append(errs, fmt.Sprintf("identifier %q must be 6 to 12 digits", a.ID))
	}
	if !IsValidBalance(a.Balance) {
		errs = append(errs, fmt.Sprintf("balance %v must be a non-negative finite number", a.Balance))
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

package domain

import "errors"

var (
	// ErrInvalidInput 識別碼缺漏或不是非空字串
	ErrInvalidInput = errors.New("identifier must be a non-empty string")

	// ErrInvalidFormat 識別碼格式不符 (非 6~12 位數字)
	ErrInvalidFormat = errors.New("identifier must be 6 to 12 digits")

	// ErrInvalidAmount 金額缺漏、非正數或非有限數
	ErrInvalidAmount = errors.New("amount must be a positive finite number")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrValidationFailed 帳戶結構檢查未通過
	ErrValidationFailed = errors.New("account validation failed")
)

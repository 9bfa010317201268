package domain

// Account 帳戶實體
// 以值語意 (value semantics) 傳遞：所有邊界都拿到拷貝，
// 只有 Store 持有權威狀態，外部無法繞過 Store 直接改寫餘額。
type Account struct {
	// ID: 帳戶識別碼，6~12 位數字字串
	ID string
	// Balance: 當前餘額，落地時固定捨入到小數點後 2 位
	Balance float64
}

// NewAccount 建立帳戶值，識別碼先正規化、餘額先捨入
func NewAccount(id string, balance float64) Account {
	return Account{
		ID:      NormalizeIdentifier(id),
		Balance: RoundCurrency(balance),
	}
}

// Deposit 存款：回傳套用後的新帳戶值，原值不變
//
// 參數:
//
//	amount: 存款金額，必須為正的有限數
//
// 回傳:
//
//	Account: 餘額更新後的帳戶拷貝
//	error: ErrInvalidAmount
func (a Account) Deposit(amount float64) (Account, error) {
	if !IsValidAmount(amount) {
		return a, ErrInvalidAmount
	}
	// 運算用原生浮點，只在寫回時捨入一次，避免多段捨入誤差疊加
	a.Balance = RoundCurrency(a.Balance + amount)
	return a, nil
}

// Withdraw 提款：金額嚴格大於餘額才算不足，允許提光到 0
//
// 參數:
//
//	amount: 提款金額，必須為正的有限數
//
// 回傳:
//
//	Account: 餘額更新後的帳戶拷貝
//	error: ErrInvalidAmount / ErrInsufficientFunds
func (a Account) Withdraw(amount float64) (Account, error) {
	if !IsValidAmount(amount) {
		return a, ErrInvalidAmount
	}
	if amount > a.Balance {
		return a, ErrInsufficientFunds
	}
	a.Balance = RoundCurrency(a.Balance - amount)
	return a, nil
}

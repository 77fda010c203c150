package domain

// AccountKind defines the fundamental accounting type of an account.
type AccountKind string

const (
	Cash       AccountKind = "CASH"       // asset: a party's wallet
	Expense    AccountKind = "EXPENSE"    // consumption attributed to a party per category
	Receivable AccountKind = "RECEIVABLE" // asset: what Owner is owed by Counterparty
	Payable    AccountKind = "PAYABLE"    // liability mirror of the opposite receivable
)

// Account identifies a ledger bucket structurally. All fields are comparable
// strings, so Account values are usable directly as map keys and two accounts
// are the same bucket iff the structs are equal. Category is set only for
// EXPENSE accounts, Counterparty only for RECEIVABLE/PAYABLE.
type Account struct {
	Kind         AccountKind `json:"kind"`
	Owner        Party       `json:"owner"`
	Counterparty Party       `json:"counterparty,omitempty"`
	Category     Category    `json:"category,omitempty"`
}

// CashAccount is the wallet bucket of the given party.
func CashAccount(p Party) Account {
	return Account{Kind: Cash, Owner: p}
}

// ExpenseAccount is the consumption bucket of the given party and category.
func ExpenseAccount(p Party, c Category) Account {
	return Account{Kind: Expense, Owner: p, Category: c}
}

// ReceivableAccount tracks what from is owed by to.
func ReceivableAccount(from, to Party) Account {
	return Account{Kind: Receivable, Owner: from, Counterparty: to}
}

// PayableAccount tracks what from owes to to. Per the mirroring invariant,
// PAYABLE(from,to) must always equal -RECEIVABLE(to,from).
func PayableAccount(from, to Party) Account {
	return Account{Kind: Payable, Owner: from, Counterparty: to}
}

// Mirror returns the account whose per-transaction delta must exactly negate
// this one: PAYABLE(Y,X) for RECEIVABLE(X,Y) and vice versa. The second return
// is false for CASH and EXPENSE accounts, which have no mirror.
func (a Account) Mirror() (Account, bool) {
	switch a.Kind {
	case Receivable:
		return PayableAccount(a.Counterparty, a.Owner), true
	case Payable:
		return ReceivableAccount(a.Counterparty, a.Owner), true
	}
	return Account{}, false
}

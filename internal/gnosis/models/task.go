package models

import (
	"time"

	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Transaction is one queued multisig transaction.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Nonce       int64     `json:"nonce"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"createdAt"`
	// MyAction is the action the requesting user can take ("sign", "execute").
	// Empty when this transaction is waiting on someone else.
	MyAction    string `json:"myAction"`
	MyActionURL string `json:"myActionUrl"`
}

// TaskGroup bundles the transactions competing for one nonce.
type TaskGroup struct {
	Nonce        int64         `json:"nonce"`
	Transactions []Transaction `json:"transactions"`
}

// SafeTask is the pending work on one safe for one user.
type SafeTask struct {
	SafeAddress string      `json:"safeAddress"`
	SafeName    string      `json:"safeName"`
	SafeURL     string      `json:"safeUrl"`
	Tasks       []TaskGroup `json:"tasks"`
}

// TaskID is the notification ledger identity: the id of the first transaction
// of the first group. The digest only announces the head of the queue; later
// transactions surface on subsequent runs as the queue drains.
func (t SafeTask) TaskID() domain.TaskID {
	if len(t.Tasks) == 0 || len(t.Tasks[0].Transactions) == 0 {
		return ""
	}
	return domain.TaskID(t.Tasks[0].Transactions[0].ID)
}

// ActionableBy reports whether the head transaction carries an action for the
// requesting user. Safes waiting on other owners are excluded from digests
// even though the raw task exists.
func (t SafeTask) ActionableBy() bool {
	if len(t.Tasks) == 0 || len(t.Tasks[0].Transactions) == 0 {
		return false
	}
	return t.Tasks[0].Transactions[0].MyAction != ""
}

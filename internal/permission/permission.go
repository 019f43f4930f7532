// Package permission decides whether the current actor may mutate a
// wallet. The gate is a pure lookup and must be consulted on every
// action; results are never cached across a permission change.
package permission

import "wallet-client/internal/models"

type Action string

const (
	ActionAddTransaction    Action = "ADD_TRANSACTION"
	ActionEditTransaction   Action = "EDIT_TRANSACTION"
	ActionDeleteTransaction Action = "DELETE_TRANSACTION"
	ActionTransferOut       Action = "TRANSFER_OUT"
	ActionTransferIn        Action = "TRANSFER_IN"
	ActionArchive           Action = "ARCHIVE"
	ActionDeleteWallet      Action = "DELETE_WALLET"
	ActionShare             Action = "SHARE"
)

// Level resolves the actor's permission on a wallet. A wallet without
// sharing metadata is the actor's own, which is implicit OWNER.
func Level(w models.Wallet) models.PermissionLevel {
	if w.Sharing == nil {
		return models.PermissionOwner
	}
	return w.Sharing.Permission
}

// CanRead is true for every level, VIEW included.
func CanRead(models.Wallet) bool {
	return true
}

// CanMutate evaluates the rule table: VIEW mutates nothing, EDIT may
// transact and transfer, OWNER may additionally archive, delete, share.
func CanMutate(w models.Wallet, action Action) bool {
	switch Level(w) {
	case models.PermissionOwner:
		return true
	case models.PermissionEdit:
		switch action {
		case ActionAddTransaction, ActionEditTransaction, ActionDeleteTransaction,
			ActionTransferOut, ActionTransferIn:
			return true
		}
		return false
	default:
		return false
	}
}

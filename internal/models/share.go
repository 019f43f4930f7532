package models

import (
	"time"

	"github.com/google/uuid"
)

type ShareStatus string

const (
	ShareStatusPending  ShareStatus = "PENDING"
	ShareStatusAccepted ShareStatus = "ACCEPTED"
	ShareStatusRejected ShareStatus = "REJECTED"
	ShareStatusRevoked  ShareStatus = "REVOKED"
	ShareStatusExpired  ShareStatus = "EXPIRED"
)

// WalletShare is a permission grant on a wallet. Only ACCEPTED shares
// grant live access; every other status is inert.
type WalletShare struct {
	ID           uuid.UUID       `json:"id"`
	WalletID     uuid.UUID       `json:"walletId"`
	OwnerID      uuid.UUID       `json:"ownerId"`
	InviteeEmail string          `json:"inviteeEmail"`
	Permission   PermissionLevel `json:"permission"`
	Status       ShareStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Active reports whether the share currently grants access.
func (s WalletShare) Active() bool {
	return s.Status == ShareStatusAccepted
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PermissionLevel string

const (
	PermissionView  PermissionLevel = "VIEW"
	PermissionEdit  PermissionLevel = "EDIT"
	PermissionOwner PermissionLevel = "OWNER"
)

// SharingInfo is attached to a wallet that was shared with the current
// actor. A wallet without it is owned by the actor outright.
type SharingInfo struct {
	ShareID    uuid.UUID       `json:"shareId"`
	Permission PermissionLevel `json:"permission"`
}

type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Archived  bool            `json:"archived"`
	OwnerID   uuid.UUID       `json:"ownerId"`
	Sharing   *SharingInfo    `json:"sharing,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

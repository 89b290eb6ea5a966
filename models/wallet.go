package models

import "time"

type Wallet struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int       `json:"userId" gorm:"index"`
	Balance   float64   `json:"balance"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Wallet) TableName() string { return "wallets" }

type WalletTransaction struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	WalletID  int       `json:"walletId" gorm:"index"`
	UserID    int       `json:"userId" gorm:"index"`
	Amount    float64   `json:"amount"`
	Kind      string    `json:"kind"` // credit, debit
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }

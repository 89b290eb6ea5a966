package models

import "time"

type Country struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Country) TableName() string { return "countries" }

type State struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	CountryID int       `json:"countryId" gorm:"index"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (State) TableName() string { return "states" }

type City struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	StateID   int       `json:"stateId" gorm:"index"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (City) TableName() string { return "cities" }

type Pincode struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Pincode   string    `json:"pincode"`
	CityID    int       `json:"cityId" gorm:"index"`
	StateID   int       `json:"stateId" gorm:"index"`
	CountryID int       `json:"countryId" gorm:"index"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Pincode) TableName() string { return "pincodes" }

type Address struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2"`
	CityID     int       `json:"cityId" gorm:"index"`
	StateID    int       `json:"stateId" gorm:"index"`
	PincodeID  int       `json:"pincodeId" gorm:"index"`
	ShippingID int       `json:"shippingId" gorm:"index"`
	IsDefault  bool      `json:"isDefault"`
	IsActive   bool      `json:"isActive"`
	IsDeleted  bool      `json:"isDeleted"`
	AddedBy    int       `json:"addedBy"`
	UpdatedBy  int       `json:"updatedBy"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Address) TableName() string { return "addresses" }

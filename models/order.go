package models

import "time"

type Order struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber string    `json:"orderNumber" gorm:"index"`
	CustomerID  int       `json:"customerId" gorm:"index"`
	SellerID    int       `json:"sellerId" gorm:"index"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	IsActive    bool      `json:"isActive"`
	IsDeleted   bool      `json:"isDeleted"`
	AddedBy     int       `json:"addedBy"`
	UpdatedBy   int       `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   int       `json:"orderId" gorm:"index"`
	ProductID int       `json:"productId" gorm:"index"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	AddedBy   int       `json:"addedBy"`
	UpdatedBy int       `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (OrderItem) TableName() string { return "order_items" }

type Shipping struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    int       `json:"orderId" gorm:"index"`
	Carrier    string    `json:"carrier"`
	TrackingNo string    `json:"trackingNo"`
	Status     string    `json:"status"`
	IsActive   bool      `json:"isActive"`
	IsDeleted  bool      `json:"isDeleted"`
	AddedBy    int       `json:"addedBy"`
	UpdatedBy  int       `json:"updatedBy"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Shipping) TableName() string { return "shippings" }

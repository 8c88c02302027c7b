package model

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// 价格以最小货币单位存储（如：分），非负
	Price int64 `gorm:"not null;default:0" json:"price"`
	Stock int   `gorm:"not null;default:0" json:"stock"`

	ThumbnailURL string `gorm:"size:255" json:"thumbnailUrl"`

	// 分类可空；删除分类时置空，不级联删除商品
	CategoryID *int64    `gorm:"index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`

	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

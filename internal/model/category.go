package model

import "time"

// Category 商品分类
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`

	// 展示排序，小的在前
	SortOrder int `gorm:"not null;default:0" json:"sortOrder"`

	CreatedAt time.Time `json:"createdAt"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

package dto

import "nshop_backend_v1/internal/model"

// ==================== 请求 DTO ====================

// ListProductsReq 商品列表查询参数
// 数值型参数类型不对（如 page=abc）由绑定层拦截返回 400；
// 越界数值（如 limit=500）不报错，由查询层静默夹取
type ListProductsReq struct {
	Name      string `form:"name"`
	StartDate string `form:"startDate"` // YYYY-MM-DD
	EndDate   string `form:"endDate"`   // YYYY-MM-DD
	Cid       int64  `form:"cid"`
	Sort      string `form:"sort"`
	Order     string `form:"order"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
}

// CreateProductReq 创建商品请求
type CreateProductReq struct {
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description" binding:"required"`
	Price        int64  `json:"price" binding:"min=0"`
	Stock        int    `json:"stock" binding:"min=0"`
	ThumbnailURL string `json:"thumbnailUrl" binding:"omitempty,url,max=255"`
	CategoryID   *int64 `json:"categoryId" binding:"omitempty,min=1"`
}

// UpdateProductReq 更新商品请求（字段均可选，nil 表示不修改）
type UpdateProductReq struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Description  *string `json:"description"`
	Price        *int64  `json:"price" binding:"omitempty,min=0"`
	Stock        *int    `json:"stock" binding:"omitempty,min=0"`
	ThumbnailURL *string `json:"thumbnailUrl" binding:"omitempty,url,max=255"`
	CategoryID   *int64  `json:"categoryId" binding:"omitempty,min=1"`
}

// ==================== 响应 DTO ====================

// ProductListResp 商品列表响应
// Page/Limit 为实际生效值，调用方可据此发现请求值被收敛
type ProductListResp struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

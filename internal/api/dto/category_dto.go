package dto

// CreateCategoryReq 创建分类请求
type CreateCategoryReq struct {
	Name      string `json:"name" binding:"required,max=50"`
	SortOrder *int   `json:"sortOrder" binding:"omitempty,min=0"`
}

// UpdateCategoryReq 更新分类请求
type UpdateCategoryReq struct {
	Name      *string `json:"name" binding:"omitempty,max=50"`
	SortOrder *int    `json:"sortOrder" binding:"omitempty,min=0"`
}

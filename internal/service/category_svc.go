package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nshop_backend_v1/internal/api/dto"
	"nshop_backend_v1/internal/model"
	"nshop_backend_v1/internal/repository"
)

// ==================== CategoryService 分类服务 ====================

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories 全量分类，按展示顺序排列
func (s *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.ListAll(ctx)
}

// CreateCategory 创建分类
func (s *CategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryReq) (*model.Category, error) {
	category := &model.Category{Name: req.Name}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory 更新分类（nil 字段不修改）
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryReq) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 删除分类
// 引用该分类的商品 category_id 被置空，商品保留
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	err := s.categoryRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

// ==================== 错误定义 ====================

var ErrCategoryNotFound = errors.New("分类不存在")

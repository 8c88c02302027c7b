package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"nshop_backend_v1/internal/api/dto"
	"nshop_backend_v1/internal/model"
	"nshop_backend_v1/internal/repository"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ==================== 列表查询 ====================

// ListProducts 按过滤条件查询商品列表
// filter 的 Page/Limit 会被收敛为实际生效值
func (s *ProductService) ListProducts(ctx context.Context, filter *repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, filter)
}

// ParseDate 解析 YYYY-MM-DD 日期参数
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

// ==================== CRUD ====================

// GetProduct 获取商品详情
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct 创建商品
func (s *ProductService) CreateProduct(ctx context.Context, req *dto.CreateProductReq) (*model.Product, error) {
	product := &model.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		ThumbnailURL: req.ThumbnailURL,
		CategoryID:   req.CategoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct 更新商品（nil 字段不修改）
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req *dto.UpdateProductReq) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ThumbnailURL != nil {
		product.ThumbnailURL = *req.ThumbnailURL
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	// 避免 Save 级联写入预加载的分类
	product.Category = nil

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct 删除商品（软删除）
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	err := s.productRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

// ==================== 错误定义 ====================

var (
	ErrProductNotFound = errors.New("商品不存在")
	ErrInvalidDate     = errors.New("日期格式错误，应为 YYYY-MM-DD")
)

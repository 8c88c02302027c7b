package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nshop_backend_v1/internal/api/dto"
	"nshop_backend_v1/internal/model"
	"nshop_backend_v1/internal/repository"
)

func setupProductService(t *testing.T) *ProductService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Category{}, &model.Product{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db))
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestProductService_UpdateProduct(t *testing.T) {
	svc := setupProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &dto.CreateProductReq{
		Name: "Mouse", Price: 4900, Stock: 10,
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	// nil 字段保持原值
	updated, err := svc.UpdateProduct(ctx, created.ID, &dto.UpdateProductReq{
		Price: i64Ptr(3900),
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}
	if updated.Price != 3900 {
		t.Errorf("Price = %d, want 3900", updated.Price)
	}
	if updated.Name != "Mouse" || updated.Stock != 10 {
		t.Errorf("未更新字段被改写: name=%s stock=%d", updated.Name, updated.Stock)
	}

	_, err = svc.UpdateProduct(ctx, 9999, &dto.UpdateProductReq{Name: strPtr("x")})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestProductService_DeleteProduct(t *testing.T) {
	svc := setupProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &dto.CreateProductReq{Name: "Mouse", Price: 4900})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	if err := svc.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
	if _, err := svc.GetProduct(ctx, created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("删除后 GetProduct err = %v, want ErrProductNotFound", err)
	}

	if err := svc.DeleteProduct(ctx, created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("重复删除 err = %v, want ErrProductNotFound", err)
	}
}

func TestProductService_ParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 15 {
		t.Errorf("解析结果错误: %v", d)
	}

	if d, err := ParseDate(""); err != nil || d != nil {
		t.Errorf("空串应返回 nil, nil，实际 %v, %v", d, err)
	}

	for _, bad := range []string{"2026/03/15", "15-03-2026", "abc", "2026-13-01"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) err = %v, want ErrInvalidDate", bad, err)
		}
	}
}

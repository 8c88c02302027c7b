package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"nshop_backend_v1/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	// List 按过滤条件查询一页商品，同时返回过滤后的总数
	// filter 中的 Page/Limit 会被就地收敛，调用方可回读实际生效值
	List(ctx context.Context, filter *ProductFilter) ([]model.Product, int64, error)
	// PurgeDeletedBefore 物理清除早于 before 软删除的商品，返回清除行数
	PurgeDeletedBefore(ctx context.Context, before time.Time) (int64, error)
}

// ==================== 过滤条件 ====================

// 排序字段白名单：对外参数名 -> 数据库列
// 白名单之外的取值静默回退到 id
var productSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
}

const (
	productDefaultLimit = 20
	productMaxLimit     = 100
)

// ProductFilter 商品列表过滤条件
// 所有字段可选，零值表示不过滤
type ProductFilter struct {
	Name       string     // 名称子串匹配（不区分大小写）
	StartDate  *time.Time // 创建日期下界（含当天）
	EndDate    *time.Time // 创建日期上界（含当天）
	CategoryID int64      // 分类 ID，0 表示不过滤

	Sort  string // id | name | createdAt，默认 id
	Order string // ASC | DESC，默认 DESC

	Page  int // 从 1 开始
	Limit int // 1..100，默认 20
}

// normalize 收敛分页与排序参数
// 越界值静默夹取，不作为错误处理
func (f *ProductFilter) normalize() (orderClause string) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = productDefaultLimit
	}
	if f.Limit > productMaxLimit {
		f.Limit = productMaxLimit
	}

	column, ok := productSortColumns[f.Sort]
	if !ok {
		column = "id"
	}

	direction := strings.ToUpper(f.Order)
	if direction != "ASC" && direction != "DESC" {
		direction = "DESC"
	}

	// 非 id 排序时补 id 次级排序，保证翻页结果稳定
	if column == "id" {
		return column + " " + direction
	}
	return column + " " + direction + ", id " + direction
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List 过滤条件全部为 AND 连接
// 先 Count 再取页；两条语句之间没有事务包裹，
// 并发写入时 total 与页内容可能基于不同快照（已知限制）
func (r *productRepo) List(ctx context.Context, filter *ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	orderClause := filter.normalize()

	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Name != "" {
		// 子串包含匹配；LOWER 两侧换小写，postgres/sqlite 行为一致
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.StartDate != nil {
		// 只比较日期部分：下界取当天 0 点
		start := filter.StartDate.Truncate(24 * time.Hour)
		query = query.Where("created_at >= ?", start)
	}
	if filter.EndDate != nil {
		// 上界含当天：转成次日 0 点的开区间
		end := filter.EndDate.Truncate(24 * time.Hour).AddDate(0, 0, 1)
		query = query.Where("created_at < ?", end)
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order(orderClause).
		Limit(filter.Limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (r *productRepo) PurgeDeletedBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&model.Product{})
	return result.RowsAffected, result.Error
}

package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"nshop_backend_v1/internal/model"
)

// ==================== 接口定义 ====================

// MemberRepository 会员仓储接口
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// GetCredentialByEmail 登录专用：唯一会读取 password_hash 的查询
	GetCredentialByEmail(ctx context.Context, email string) (*model.MemberCredential, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

// 公开读取只选这些列，password_hash 永远不在其中
var memberPublicColumns = []string{
	"id", "email", "name", "phone", "status",
	"created_at", "updated_at", "last_login_at",
}

type memberRepo struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepo) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).
		Select(memberPublicColumns).
		First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *memberRepo) GetCredentialByEmail(ctx context.Context, email string) (*model.MemberCredential, error) {
	var cred model.MemberCredential
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Select("id", "email", "password_hash", "name", "status").
		Where("email = ?", email).
		Take(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *memberRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now()).Error
}

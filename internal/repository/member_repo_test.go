package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"nshop_backend_v1/internal/model"
)

func newTestMember(email string) *model.Member {
	return &model.Member{
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
		Name:         "测试会员",
		Status:       model.MemberStatusActive,
	}
}

func TestMemberRepo_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newTestMember("a@b.com")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// 唯一索引兜底：同邮箱二次写入翻译成 ErrDuplicatedKey
	err := repo.Create(ctx, newTestMember("a@b.com"))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestMemberRepo_GetByID_ExcludesHash(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := newTestMember("a@b.com")
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found == nil {
		t.Fatal("GetByID() = nil, want member")
	}
	if found.Email != "a@b.com" {
		t.Errorf("Email = %s, want a@b.com", found.Email)
	}
	// 公开读取不选 password_hash 列
	if found.PasswordHash != "" {
		t.Error("公开读取不应带出密码哈希")
	}

	// 不存在的 ID 返回 nil, nil
	found, err = repo.GetByID(ctx, 9999)
	if err != nil {
		t.Fatalf("GetByID(9999) error = %v", err)
	}
	if found != nil {
		t.Errorf("GetByID(9999) = %+v, want nil", found)
	}
}

func TestMemberRepo_GetCredentialByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := newTestMember("a@b.com")
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	cred, err := repo.GetCredentialByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetCredentialByEmail() error = %v", err)
	}
	if cred == nil {
		t.Fatal("cred = nil, want credential")
	}
	if cred.ID != m.ID {
		t.Errorf("ID = %d, want %d", cred.ID, m.ID)
	}
	// 凭证视图是唯一会读取哈希的查询
	if cred.PasswordHash == "" {
		t.Error("凭证视图应带出密码哈希")
	}
	if cred.Status != model.MemberStatusActive {
		t.Errorf("Status = %s, want ACTIVE", cred.Status)
	}

	// 不存在的邮箱返回 nil, nil
	cred, err = repo.GetCredentialByEmail(ctx, "nobody@b.com")
	if err != nil {
		t.Fatalf("GetCredentialByEmail(nobody) error = %v", err)
	}
	if cred != nil {
		t.Errorf("cred = %+v, want nil", cred)
	}
}

func TestMemberRepo_UpdateLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := newTestMember("a@b.com")
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.UpdateLastLogin(ctx, m.ID); err != nil {
		t.Fatalf("UpdateLastLogin() error = %v", err)
	}

	found, err := repo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.LastLoginAt == nil {
		t.Error("LastLoginAt 应已写入")
	}
}

func TestMemberRepo_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newTestMember("a@b.com")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := repo.ExistsByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if !exists {
		t.Error("exists = false, want true")
	}

	exists, err = repo.ExistsByEmail(ctx, "nobody@b.com")
	if err != nil {
		t.Fatalf("ExistsByEmail(nobody) error = %v", err)
	}
	if exists {
		t.Error("exists = true, want false")
	}
}

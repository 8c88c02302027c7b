package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"nshop_backend_v1/internal/api/dto"
	"nshop_backend_v1/internal/middleware"
	"nshop_backend_v1/internal/model"
	"nshop_backend_v1/internal/repository"
	"nshop_backend_v1/pkg/utils"
)

// ==================== MemberService 会员服务 ====================

// MemberService 会员服务：注册、登录、资料查询
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService 创建会员服务
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// normalizeEmail 邮箱统一处理：去空白 + 小写
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// 格式校验对归一化后的值做，不在 DTO 绑定层做
var emailValidate = validator.New()

func validEmail(email string) bool {
	return emailValidate.Var(email, "email") == nil
}

// ==================== 注册 ====================

// Register 会员注册
// 明文密码只在本函数栈上经过，哈希落库后不再保留
func (s *MemberService) Register(ctx context.Context, req *dto.RegisterReq) (*dto.MemberResp, error) {
	email := normalizeEmail(req.Email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}

	// 先查重，冲突直接报告而不是覆盖
	exists, err := s.memberRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Status:       model.MemberStatusActive,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// 并发注册同一邮箱时查重可能漏判，靠唯一索引兜底，
		// 后写的一方同样按冲突处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return &dto.MemberResp{
		ID:        member.ID,
		Email:     member.Email,
		Name:      member.Name,
		Phone:     member.Phone,
		CreatedAt: member.CreatedAt,
	}, nil
}

// ==================== 登录 ====================

// Login 会员登录
// 查不到账号、状态非 ACTIVE、密码错误统一返回 ErrInvalidCredentials，
// 响应上不暴露邮箱是否存在
func (s *MemberService) Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error) {
	email := normalizeEmail(req.Email)

	cred, err := s.memberRepo.GetCredentialByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cred == nil || cred.Status != model.MemberStatusActive {
		return nil, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(cred.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := middleware.GenerateAccessToken(cred.ID, cred.Email)
	if err != nil {
		return nil, err
	}

	// 最后登录时间异步落库：失败只记日志，不影响登录结果
	go func(id int64) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.memberRepo.UpdateLastLogin(ctx, id); err != nil {
			log.Printf("更新最后登录时间失败 member_id=%d: %v", id, err)
		}
	}(cred.ID)

	return &dto.LoginResp{
		AccessToken: accessToken,
		Member: dto.MemberBrief{
			ID:    cred.ID,
			Email: cred.Email,
			Name:  cred.Name,
		},
	}, nil
}

// ==================== 资料查询 ====================

// GetProfile 按 ID 获取会员公开资料
func (s *MemberService) GetProfile(ctx context.Context, id int64) (*model.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// ==================== 错误定义 ====================

var (
	ErrInvalidEmail       = errors.New("邮箱格式错误")
	ErrEmailExists        = errors.New("邮箱已被使用")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrMemberNotFound     = errors.New("会员不存在")
)

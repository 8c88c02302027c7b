package model

import "time"

// MemberStatus 会员状态
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusInactive MemberStatus = "INACTIVE"
	MemberStatusBanned   MemberStatus = "BANNED"
)

// Member 会员账号
type Member struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// 邮箱即登录名，入库前统一 trim + 小写
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`

	// argon2id 编码串，任何对外读取都不选这一列
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Name   string       `gorm:"size:50;not null" json:"name"`
	Phone  *string      `gorm:"size:20" json:"phone"`
	Status MemberStatus `gorm:"size:20;not null;default:ACTIVE" json:"status"`

	// 第三方登录预留
	Provider   *string `gorm:"size:20" json:"-"`
	ProviderID *string `gorm:"size:100" json:"-"`

	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Member) TableName() string {
	return "members"
}

// MemberCredential 登录校验专用的窄读取视图，
// 只有密码核对路径会带出 password_hash
type MemberCredential struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Status       MemberStatus
}

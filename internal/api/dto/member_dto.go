package dto

import "time"

// ==================== 请求 DTO ====================

// RegisterReq 注册请求
// 密码长度限定 8~64：过短不安全，过长会拖慢哈希计算
type RegisterReq struct {
	// 格式校验在服务层归一化（trim + 小写）之后做，
	// 带空白的合法邮箱不能在绑定层被拒掉
	Email    string  `json:"email" binding:"required,max=255"`
	Password string  `json:"password" binding:"required,min=8,max=64"`
	Name     string  `json:"name" binding:"required,max=50"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
}

// LoginReq 登录请求
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ==================== 响应 DTO ====================

// MemberResp 注册响应（脱敏会员视图）
// 注意：密码哈希绝不返回
type MemberResp struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemberBrief 登录响应里的最小会员视图
type MemberBrief struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResp 登录响应
type LoginResp struct {
	AccessToken string      `json:"accessToken"`
	Member      MemberBrief `json:"member"`
}

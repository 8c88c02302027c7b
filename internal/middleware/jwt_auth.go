package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey      string        // 签名密钥
	AccessTokenTTL time.Duration // Access Token 有效期
	Issuer         string        // 签发者
}

// 全局配置，启动时由 main 注入
var jwtConfig = &JWTConfig{
	AccessTokenTTL: 15 * time.Minute,
	Issuer:         "nshop",
}

// SetJWTConfig 设置 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定义 ====================

// MemberClaims 会员声明
// Subject 为会员 ID（十进制字符串），Email 为登录邮箱
// Token 内只放这两个业务字段；需要权威会员数据的接口必须按 ID 回查数据库
type MemberClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// MemberID 从 Subject 解析会员 ID
func (c *MemberClaims) MemberID() int64 {
	id, _ := strconv.ParseInt(c.Subject, 10, 64)
	return id
}

// ==================== Token 生成 / 解析 ====================

// GenerateAccessToken 生成 Access Token
func GenerateAccessToken(memberID int64, email string) (string, error) {
	now := time.Now()
	claims := &MemberClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   strconv.FormatInt(memberID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ParseToken 解析并校验 Token
// 签名非法、格式错误、已过期均返回错误
func ParseToken(tokenString string) (*MemberClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &MemberClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*MemberClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyMemberID = "member_id"
	ContextKeyEmail    = "email"
	ContextKeyClaims   = "claims"
)

// JWTAuth JWT 认证中间件
// 校验失败一律 401，不区分具体原因
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "未提供认证信息",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "认证格式错误，应为 Bearer {token}",
			})
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token 无效或已过期",
			})
			c.Abort()
			return
		}

		// 注入会员身份到 Context（仅作提示性身份，权威数据需回查）
		c.Set(ContextKeyMemberID, claims.MemberID())
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// GetMemberID 从 Context 获取会员 ID
func GetMemberID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyMemberID); exists {
		return id.(int64)
	}
	return 0
}

// GetMemberEmail 从 Context 获取会员邮箱
func GetMemberEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextKeyEmail); exists {
		return email.(string)
	}
	return ""
}

// GetMemberClaims 从 Context 获取完整 Claims
func GetMemberClaims(c *gin.Context) *MemberClaims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*MemberClaims)
	}
	return nil
}

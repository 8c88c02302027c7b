package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ==================== 应用配置 ====================

// Config 应用配置
// 启动时加载一次，之后只通过构造函数显式传递，
// 请求处理路径上不读取任何环境变量
type Config struct {
	ServerPort  string
	DatabaseDSN string

	// JWT 签名密钥，必须外部提供，禁止写进代码或日志
	JWTSecret string
	JWTIssuer string
	// Access Token 有效期，固定 15 分钟
	AccessTokenTTL time.Duration

	// 前端站点地址（CORS 放行来源）
	CORSAllowOrigin string
}

// Load 加载配置
// 优先读取进程环境变量，.env 文件仅作本地开发兜底
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN",
			"host=localhost user=nshop password=nshop dbname=nshop port=5432 sslmode=disable"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTIssuer:       getEnv("JWT_ISSUER", "nshop"),
		AccessTokenTTL:  15 * time.Minute,
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "http://localhost:3000"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET 未配置")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nshop_backend_v1/internal/model"
)

// setupTestDB 内存 sqlite 测试库，三张表全量迁移
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// 与生产配置一致：唯一键冲突翻译成 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(&model.Member{}, &model.Category{}, &model.Product{})
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

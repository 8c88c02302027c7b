package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"nshop_backend_v1/internal/repository"
)

// ==================== PurgeTask 商品清理任务 ====================

// 软删除保留期，到期物理清除
const purgeRetention = 30 * 24 * time.Hour

// PurgeTask 定期物理清除过期软删除商品
type PurgeTask struct {
	productRepo repository.ProductRepository
	cron        *cron.Cron
}

// NewPurgeTask 创建清理任务
func NewPurgeTask(productRepo repository.ProductRepository) *PurgeTask {
	return &PurgeTask{
		productRepo: productRepo,
		cron:        cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务
// 每日凌晨 4 点执行一次
func (t *PurgeTask) Start() {
	_, _ = t.cron.AddFunc("0 0 4 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		t.Run(ctx)
	})

	t.cron.Start()
	log.Println("[PurgeTask] 商品清理任务已启动")
}

// Stop 停止定时任务
func (t *PurgeTask) Stop() {
	t.cron.Stop()
}

// Run 执行一次清理
func (t *PurgeTask) Run(ctx context.Context) {
	before := time.Now().Add(-purgeRetention)

	purged, err := t.productRepo.PurgeDeletedBefore(ctx, before)
	if err != nil {
		log.Printf("[PurgeTask] 清理失败: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("[PurgeTask] 已物理清除 %d 条过期商品", purged)
	}
}

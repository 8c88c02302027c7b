package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nshop_backend_v1/internal/config"
	"nshop_backend_v1/internal/controller"
	"nshop_backend_v1/internal/middleware"
	"nshop_backend_v1/internal/model"
	"nshop_backend_v1/internal/repository"
	"nshop_backend_v1/internal/router"
	"nshop_backend_v1/internal/service"
	"nshop_backend_v1/internal/task"
	"nshop_backend_v1/pkg/database"
)

// @title nshop 商城后端 API
// @version 1.0
// @description 会员注册登录与商品目录查询的商城后端 API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 加载配置
	cfg := config.Load()

	// 2. JWT 配置注入（仅此一处，请求路径上不再读配置）
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:      cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
		Issuer:         cfg.JWTIssuer,
	})

	// 3. 初始化数据库
	db := initDatabase(cfg)

	// 4. 初始化依赖
	deps := initDependencies(db)

	// 5. 启动定时任务
	initTasks(deps)

	// 6. 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))
	router.InitRoutes(r, deps.Controllers)

	// 7. 启动服务
	startServer(r, cfg.ServerPort)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Member   repository.MemberRepository
	Product  repository.ProductRepository
	Category repository.CategoryRepository
}

// Services 服务集合
type Services struct {
	Member   *service.MemberService
	Product  *service.ProductService
	Category *service.CategoryService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config) *gorm.DB {
	return database.InitDB(
		cfg.DatabaseDSN,
		&model.Member{},
		&model.Category{},
		&model.Product{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	repos := &Repositories{
		Member:   repository.NewMemberRepository(db),
		Product:  repository.NewProductRepository(db),
		Category: repository.NewCategoryRepository(db),
	}

	services := &Services{
		Member:   service.NewMemberService(repos.Member),
		Product:  service.NewProductService(repos.Product),
		Category: service.NewCategoryService(repos.Category),
	}

	controllers := &router.Controllers{
		Auth:     controller.NewAuthController(services.Member),
		Member:   controller.NewMemberController(services.Member),
		Product:  controller.NewProductController(services.Product),
		Category: controller.NewCategoryController(services.Category),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	purgeTask := task.NewPurgeTask(deps.Repos.Product)
	purgeTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

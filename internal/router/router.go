package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nshop_backend_v1/internal/controller"
	"nshop_backend_v1/internal/middleware"

	_ "nshop_backend_v1/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Auth     *controller.AuthController
	Member   *controller.MemberController
	Product  *controller.ProductController
	Category *controller.CategoryController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctl *Controllers) {
	// Swagger 文档
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// auth 鉴权组
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	// member 会员组
	members := r.Group("/members")
	{
		// /members/me 需要登录；Token 失效一律 401
		members.GET("/me", middleware.JWTAuth(), ctl.Member.Me)
		members.GET("/:mid", ctl.Member.GetMember)
	}

	// product 商品组：读公开，写需要登录
	products := r.Group("/products")
	{
		products.GET("", ctl.Product.ListProducts)
		products.GET("/:pid", ctl.Product.GetProduct)

		products.POST("", middleware.JWTAuth(), ctl.Product.CreateProduct)
		products.PUT("/:pid", middleware.JWTAuth(), ctl.Product.UpdateProduct)
		products.DELETE("/:pid", middleware.JWTAuth(), ctl.Product.DeleteProduct)
	}

	// category 分类组：读公开，写需要登录
	categories := r.Group("/categories")
	{
		categories.GET("", ctl.Category.ListCategories)

		categories.POST("", middleware.JWTAuth(), ctl.Category.CreateCategory)
		categories.PUT("/:cid", middleware.JWTAuth(), ctl.Category.UpdateCategory)
		categories.DELETE("/:cid", middleware.JWTAuth(), ctl.Category.DeleteCategory)
	}
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nshop_backend_v1/internal/api/dto"
	"nshop_backend_v1/internal/model"
	"nshop_backend_v1/internal/repository"
	"nshop_backend_v1/internal/service"
)

// ProductController 商品接口
type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ==================== 查询接口 ====================

// ListProducts 商品列表
// @Summary 商品列表（过滤/排序/分页）
// @Tags Product
// @Param name query string false "名称子串"
// @Param startDate query string false "创建日期下界 YYYY-MM-DD"
// @Param endDate query string false "创建日期上界 YYYY-MM-DD"
// @Param cid query int false "分类ID"
// @Param sort query string false "排序字段 id|name|createdAt" default(id)
// @Param order query string false "排序方向 ASC|DESC" default(DESC)
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量，上限100" default(20)
// @Success 200 {object} dto.ProductListResp
// @Failure 400 {object} map[string]interface{}
// @Router /products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	var req dto.ListProductsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	startDate, err := service.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}
	endDate, err := service.ParseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	filter := &repository.ProductFilter{
		Name:       req.Name,
		StartDate:  startDate,
		EndDate:    endDate,
		CategoryID: req.Cid,
		Sort:       req.Sort,
		Order:      req.Order,
		Page:       req.Page,
		Limit:      req.Limit,
	}

	products, total, err := ctrl.productService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败"})
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	// Page/Limit 返回收敛后的实际生效值
	c.JSON(http.StatusOK, dto.ProductListResp{
		Items: products,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

// GetProduct 商品详情
// @Summary 商品详情
// @Tags Product
// @Param pid path int true "商品ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]interface{}
// @Router /products/{pid} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil || pid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	product, err := ctrl.productService.GetProduct(c.Request.Context(), pid)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ==================== 管理接口 ====================

// CreateProduct 创建商品
// @Summary 创建商品
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Param body body dto.CreateProductReq true "商品信息"
// @Success 201 {object} model.Product
// @Failure 400 {object} map[string]interface{}
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	product, err := ctrl.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "创建失败"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Param pid path int true "商品ID"
// @Param body body dto.UpdateProductReq true "更新字段"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]interface{}
// @Router /products/{pid} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil || pid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), pid, &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "更新失败"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct 删除商品
// @Summary 删除商品
// @Tags Product
// @Security BearerAuth
// @Param pid path int true "商品ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /products/{pid} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil || pid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	if err := ctrl.productService.DeleteProduct(c.Request.Context(), pid); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "删除失败"})
		return
	}

	c.Status(http.StatusNoContent)
}

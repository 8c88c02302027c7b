package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nshop_backend_v1/internal/api/dto"
	"nshop_backend_v1/internal/service"
)

// CategoryController 分类接口
type CategoryController struct {
	categoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ListCategories 分类列表
// @Summary 分类列表（按展示顺序）
// @Tags Category
// @Success 200 {array} model.Category
// @Router /categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory 创建分类
// @Summary 创建分类
// @Tags Category
// @Security BearerAuth
// @Accept json
// @Param body body dto.CreateCategoryReq true "分类信息"
// @Success 201 {object} model.Category
// @Failure 400 {object} map[string]interface{}
// @Router /categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	category, err := ctrl.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "创建失败"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory 更新分类
// @Summary 更新分类
// @Tags Category
// @Security BearerAuth
// @Accept json
// @Param cid path int true "分类ID"
// @Param body body dto.UpdateCategoryReq true "更新字段"
// @Success 200 {object} model.Category
// @Failure 404 {object} map[string]interface{}
// @Router /categories/{cid} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	cid, err := strconv.ParseInt(c.Param("cid"), 10, 64)
	if err != nil || cid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的分类ID"})
		return
	}

	var req dto.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	category, err := ctrl.categoryService.UpdateCategory(c.Request.Context(), cid, &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "更新失败"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory 删除分类
// 引用该分类的商品保留，category_id 置空
// @Summary 删除分类
// @Tags Category
// @Security BearerAuth
// @Param cid path int true "分类ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /categories/{cid} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	cid, err := strconv.ParseInt(c.Param("cid"), 10, 64)
	if err != nil || cid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的分类ID"})
		return
	}

	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), cid); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "删除失败"})
		return
	}

	c.Status(http.StatusNoContent)
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nshop_backend_v1/internal/api/dto"
	"nshop_backend_v1/internal/service"
)

// AuthController 注册 / 登录
type AuthController struct {
	memberService *service.MemberService
}

func NewAuthController(memberService *service.MemberService) *AuthController {
	return &AuthController{memberService: memberService}
}

// Register 会员注册
// @Summary 会员注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterReq true "注册信息"
// @Success 201 {object} dto.MemberResp
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctrl.memberService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"code": 409, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "注册失败"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login 会员登录
// @Summary 会员登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginReq true "登录信息"
// @Success 200 {object} dto.LoginResp
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctrl.memberService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 不区分"账号不存在/已停用/密码错误"，防止撞库枚举
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "登录失败"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

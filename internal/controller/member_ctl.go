package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nshop_backend_v1/internal/middleware"
	"nshop_backend_v1/internal/service"
)

// MemberController 会员资料查询
type MemberController struct {
	memberService *service.MemberService
}

func NewMemberController(memberService *service.MemberService) *MemberController {
	return &MemberController{memberService: memberService}
}

// Me 当前登录会员资料
// Token 中的身份只作索引，资料以数据库为准
// @Summary 当前会员资料
// @Tags Member
// @Security BearerAuth
// @Success 200 {object} model.Member
// @Failure 401 {object} map[string]interface{}
// @Router /members/me [get]
func (ctrl *MemberController) Me(c *gin.Context) {
	memberID := middleware.GetMemberID(c)

	member, err := ctrl.memberService.GetProfile(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetMember 按 ID 查询会员公开资料
// @Summary 会员公开资料
// @Tags Member
// @Param mid path int true "会员ID"
// @Success 200 {object} model.Member
// @Failure 404 {object} map[string]interface{}
// @Router /members/{mid} [get]
func (ctrl *MemberController) GetMember(c *gin.Context) {
	mid, err := strconv.ParseInt(c.Param("mid"), 10, 64)
	if err != nil || mid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的会员ID"})
		return
	}

	member, err := ctrl.memberService.GetProfile(c.Request.Context(), mid)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败"})
		return
	}

	c.JSON(http.StatusOK, member)
}

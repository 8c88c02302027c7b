package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nshop_backend_v1/internal/controller"
	"nshop_backend_v1/internal/middleware"
	"nshop_backend_v1/internal/model"
	"nshop_backend_v1/internal/repository"
	"nshop_backend_v1/internal/router"
	"nshop_backend_v1/internal/service"
)

// setupTestServer 拉起完整路由 + 内存数据库
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "连接测试数据库失败")
	require.NoError(t, db.AutoMigrate(&model.Member{}, &model.Category{}, &model.Product{}), "数据库迁移失败")

	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: 15 * time.Minute,
		Issuer:         "nshop-test",
	})

	memberSvc := service.NewMemberService(repository.NewMemberRepository(db))
	productSvc := service.NewProductService(repository.NewProductRepository(db))
	categorySvc := service.NewCategoryService(repository.NewCategoryRepository(db))

	r := gin.New()
	router.InitRoutes(r, &router.Controllers{
		Auth:     controller.NewAuthController(memberSvc),
		Member:   controller.NewMemberController(memberSvc),
		Product:  controller.NewProductController(productSvc),
		Category: controller.NewCategoryController(categorySvc),
	})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "解析响应体失败: %s", w.Body.String())
	return out
}

// registerAndLogin 注册并登录测试账号，返回 accessToken
func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": "kim@x.com", "password": "password123", "name": "Kim",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "注册失败: %s", w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "kim@x.com", "password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "登录失败: %s", w.Body.String())

	token, _ := decodeBody(t, w)["accessToken"].(string)
	require.NotEmpty(t, token, "登录响应缺少 accessToken")
	return token
}

func TestAuthAPI_Register(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": "kim@x.com", "password": "password123", "name": "Kim",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "kim@x.com", body["email"])
	// 响应不得带出密码相关字段
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "password")

	// 仅大小写/空白不同的邮箱视为重复注册：
	// 带空白的邮箱必须先归一化再查重，不能在绑定层被 400 拦下
	w = doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": " KIM@x.com ", "password": "password456", "name": "Kim2",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// 带空白的新邮箱归一化后正常注册
	w = doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": " Lee@x.com ", "password": "password123", "name": "Lee",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "lee@x.com", decodeBody(t, w)["email"])

	// 参数校验：非法邮箱（去空白后依然非法）、过短密码、缺少姓名
	for _, bad := range []gin.H{
		{"email": "not-an-email", "password": "password123", "name": "Kim"},
		{"email": " not-an-email ", "password": "password123", "name": "Kim"},
		{"email": "ok@x.com", "password": "short", "name": "Kim"},
		{"email": "ok@x.com", "password": "password123"},
	} {
		w = doJSON(t, r, http.MethodPost, "/auth/register", bad, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "参数 %v 应被拒绝", bad)
	}
}

func TestAuthAPI_Login(t *testing.T) {
	r, _ := setupTestServer(t)
	registerAndLogin(t, r)

	// 密码错误与账号不存在返回同样的 401
	for _, c := range []gin.H{
		{"email": "kim@x.com", "password": "wrong-password"},
		{"email": "nobody@x.com", "password": "password123"},
	} {
		w := doJSON(t, r, http.MethodPost, "/auth/login", c, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "登录 %v 应返回 401", c)
	}
}

func TestMemberAPI_Me(t *testing.T) {
	r, _ := setupTestServer(t)
	token := registerAndLogin(t, r)

	// 未携带 Token
	w := doJSON(t, r, http.MethodGet, "/members/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/members/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "kim@x.com", decodeBody(t, w)["email"])
}

func TestProductAPI_List(t *testing.T) {
	r, db := setupTestServer(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&model.Product{Name: "Keyboard", Price: 19900}).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/products?name=key&limit=500&page=0", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.EqualValues(t, 3, body["total"])
	// 越界分页收敛为实际生效值回显
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 100, body["limit"])
	require.IsType(t, []any{}, body["items"])
	assert.Len(t, body["items"], 3)

	// 空结果 items 为 []，不是 null
	w = doJSON(t, r, http.MethodGet, "/products?name=nothing", nil, "")
	body = decodeBody(t, w)
	require.IsType(t, []any{}, body["items"], "空结果 items 应为数组: %s", w.Body.String())
	assert.Empty(t, body["items"])

	// 非数字分页参数与非法日期直接 400
	for _, q := range []string{"?page=abc", "?limit=xyz", "?startDate=2026/01/01", "?endDate=bad"} {
		w = doJSON(t, r, http.MethodGet, "/products"+q, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "查询 %s 应返回 400", q)
	}
}

func TestProductAPI_WriteRequiresAuth(t *testing.T) {
	r, _ := setupTestServer(t)
	token := registerAndLogin(t, r)

	create := gin.H{"name": "Mouse", "description": "wireless", "price": 4900, "stock": 5}

	w := doJSON(t, r, http.MethodPost, "/products", create, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "未登录不可创建商品")

	w = doJSON(t, r, http.MethodPost, "/products", create, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decodeBody(t, w)["id"])

	w = doJSON(t, r, http.MethodPut, "/products/1", gin.H{"price": 3900}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 3900, decodeBody(t, w)["price"])

	w = doJSON(t, r, http.MethodDelete, "/products/1", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// 软删除后详情 404
	w = doJSON(t, r, http.MethodGet, "/products/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryAPI(t *testing.T) {
	r, _ := setupTestServer(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/categories", gin.H{"name": "Peripherals", "sortOrder": 2}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cats []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	require.Len(t, cats, 1)
	assert.Equal(t, "Peripherals", cats[0]["name"])

	w = doJSON(t, r, http.MethodDelete, "/categories/999", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code, "删除不存在的分类应返回 404")
}

package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Glimpse/internal/service"

	"github.com/gin-gonic/gin"
)

func newBindingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/echo", func(c *gin.Context) {
		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			Error(c, err)
			return
		}
		Success(c, req)
	})
	return r
}

// 测试内容：请求体解析失败的各种形态都应映射为 400，而不是落入 500。
func TestError_MalformedBody(t *testing.T) {
	r := newBindingRouter()

	cases := []struct {
		name string
		body string
	}{
		{"空请求体", ""},
		{"截断的 JSON", `{"name":`},
		{"非法 JSON", `not json at all`},
		{"字段类型不符", `{"name":123}`},
		{"缺少必填字段", `{}`},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: 期望 400, 实际为 %d (body=%s)", tc.name, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"error"`) {
			t.Errorf("%s: 响应应包含 error 字段, 实际为 %s", tc.name, w.Body.String())
		}
	}

	// 合法请求不受影响
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"ok"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("合法请求期望 200, 实际为 %d", w.Code)
	}
}

// 测试内容：服务错误按 ErrorMap 映射状态码，未知错误统一 500。
func TestError_ServiceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{service.ErrPostNotFound, http.StatusNotFound},
		{service.ErrPasswordIncorrect, http.StatusUnauthorized},
		{service.ErrPostTooLong, http.StatusBadRequest},
		{assertAnError{}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Error(c, tc.err)
		if w.Code != tc.status {
			t.Errorf("错误 %v: 期望 %d, 实际为 %d", tc.err, tc.status, w.Code)
		}
	}
}

type assertAnError struct{}

func (assertAnError) Error() string { return "boom" }

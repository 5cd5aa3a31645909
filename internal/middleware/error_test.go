package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Get("/test", handler)
	app.Post("/body", middleware.JSONBody(), func(c *fiber.Ctx) error {
		body, err := middleware.Body(c)
		if err != nil {
			return err
		}
		return c.JSON(dto.NewSuccessResponse(len(body), ""))
	})
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", domain.NewValidationError("考试名称不能为空且长度不能少于2位"), http.StatusBadRequest, "VALIDATION_ERROR", "数据验证失败"},
		{"invalid request", domain.NewInvalidRequestError("搜索关键词不能为空"), http.StatusBadRequest, "VALIDATION_ERROR", "搜索关键词不能为空"},
		{"not found", domain.NewNotFoundError("考试不存在"), http.StatusNotFound, "NOT_FOUND", "考试不存在"},
		{"conflict", domain.NewConflictError("无法删除考试，存在关联的题目"), http.StatusConflict, "CONFLICT", "无法删除考试，存在关联的题目"},
		{"database", domain.NewDatabaseError("获取考试列表失败", errors.New("timeout")), http.StatusInternalServerError, "DATABASE_ERROR", "获取考试列表失败"},
		{"wrapped domain error", errors.Join(errors.New("outer"), domain.NewNotFoundError("题目不存在")), http.StatusNotFound, "NOT_FOUND", "题目不存在"},
		{"fiber bad request", fiber.NewError(http.StatusBadRequest, "bad body"), http.StatusBadRequest, "VALIDATION_ERROR", "bad body"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", "服务器内部错误"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			app := newApp(func(c *fiber.Ctx) error { return err })

			resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil), -1)
			require.NoError(t, reqErr)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			out := decodeError(t, resp)
			assert.False(t, out.Success)
			assert.Equal(t, tt.wantCode, out.Error.Code)
			assert.Equal(t, tt.wantMsg, out.Message)
			assert.Equal(t, out.Message, out.Error.Message)
			assert.NotNil(t, out.Error.Details)
		})
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	app := newApp(func(c *fiber.Ctx) error {
		return domain.NewValidationError("组织编码不能为空且长度不能少于3位", "组织名称不能为空且长度不能少于2位")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil), -1)
	require.NoError(t, err)

	out := decodeError(t, resp)
	assert.Equal(t, []interface{}{"组织编码不能为空且长度不能少于3位", "组织名称不能为空且长度不能少于2位"}, out.Error.Details["errors"])
}

func TestErrorHandler_UnknownErrorHidesCause(t *testing.T) {
	app := newApp(func(c *fiber.Ctx) error {
		return errors.New("pq: password authentication failed")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	out := decodeError(t, resp)
	assert.Equal(t, "INTERNAL_ERROR", out.Error.Code)
	assert.Empty(t, out.Error.Details)
}

func TestErrorHandler_RoutingErrors(t *testing.T) {
	app := newApp(func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/test", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	out := decodeError(t, resp)
	assert.Equal(t, "METHOD_NOT_ALLOWED", out.Error.Code)
	assert.Equal(t, "不支持的请求方法", out.Message)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out = decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", out.Error.Code)
	assert.Equal(t, "请求的资源不存在", out.Message)
}

func TestJSONBody(t *testing.T) {
	app := newApp(nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"object", `{"a":1,"b":"x"}`, http.StatusOK},
		{"malformed", `{"a":`, http.StatusBadRequest},
		{"array", `[1,2]`, http.StatusBadRequest},
		{"empty", ``, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/body", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus != http.StatusOK {
				out := decodeError(t, resp)
				assert.Equal(t, "VALIDATION_ERROR", out.Error.Code)
			}
		})
	}
}

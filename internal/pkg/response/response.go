package response

import (
	"Glimpse/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Created 资源创建成功返回封装
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Error 处理错误，将服务错误映射为 HTTP 状态码
func Error(c *gin.Context, err error) {
	if isMalformedRequest(err) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "Unexpected error", "err", err)
		Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}

// isMalformedRequest 识别请求体解析阶段的错误：
// 空请求体、截断或非法的 JSON、字段类型不符、绑定校验失败
func isMalformedRequest(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}

	var syntaxError *json.SyntaxError
	var stdSyntaxError *stdjson.SyntaxError
	if errors.As(err, &syntaxError) || errors.As(err, &stdSyntaxError) {
		return true
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	var stdUnmarshalTypeError *stdjson.UnmarshalTypeError
	return errors.As(err, &unmarshalTypeError) || errors.As(err, &stdUnmarshalTypeError)
}

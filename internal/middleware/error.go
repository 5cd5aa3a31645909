package middleware

import (
	"errors"
	"net/http"

	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	methodNotAllowedMessage = "不支持的请求方法"
	notFoundMessage         = "请求的资源不存在"
	internalErrorMessage    = "服务器内部错误"
)

// ErrorHandler renders every error returned by a handler as the error envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			code, message := mapFiberError(fiberErr)
			return c.Status(fiberErr.Code).JSON(dto.NewErrorResponse(code, message, nil))
		}

		// Handle domain errors; anything else is an internal error
		var domainErr *domain.DomainError
		if !errors.As(err, &domainErr) {
			domainErr = domain.NewInternalError(internalErrorMessage, err)
		}
		statusCode := mapDomainErrorToHTTPStatus(domainErr)
		fields := []zap.Field{
			zap.String("code", string(domainErr.Code)),
			zap.String("message", domainErr.Message),
			zap.Int("status", statusCode),
		}
		if messages := domain.ValidationMessages(domainErr); len(messages) > 0 {
			fields = append(fields, zap.Strings("errors", messages))
		}
		if domainErr.Cause != nil {
			fields = append(fields, zap.Error(domainErr.Cause))
		}
		if statusCode >= http.StatusInternalServerError {
			log.Error("Request failed", fields...)
		} else {
			log.Warn("Request rejected", fields...)
		}
		return c.Status(statusCode).JSON(dto.NewErrorResponse(domainErr.Code, domainErr.Message, domainErr.Details))
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict:
		return http.StatusConflict
	case domain.CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func mapFiberError(err *fiber.Error) (domain.ErrorCode, string) {
	switch err.Code {
	case http.StatusMethodNotAllowed:
		return domain.CodeMethodNotAllowed, methodNotAllowedMessage
	case http.StatusNotFound:
		return domain.CodeNotFound, notFoundMessage
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnprocessableEntity:
		return domain.CodeValidation, err.Message
	default:
		return domain.CodeInternal, err.Message
	}
}

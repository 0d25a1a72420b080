package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"catalog/pkg/flash"
)

const (
	// RequestedWithHeader is sent by XHR clients that want the JSON projection.
	RequestedWithHeader = "X-Requested-With"
	XMLHttpRequest      = "XMLHttpRequest"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Errors  FieldErrors `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldErrors maps a form field to the failed validation tag.
type FieldErrors map[string]string

// View is handed to every HTML template.
type View struct {
	Lang    string
	Path    string
	Query   string
	TraceID string
	Flashes []flash.Message
	Errors  FieldErrors
	Form    interface{}
	Data    interface{}
	// Extra carries page-only values that stay out of the JSON projection.
	Extra   map[string]interface{}
}

// WantsJSON reports whether the client asked for the JSON projection.
func WantsJSON(c *gin.Context) bool {
	if c.GetHeader(RequestedWithHeader) == XMLHttpRequest {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.HasPrefix(accept, "application/json")
}

// Render writes data as an HTML page, or as the JSON envelope when requested.
func Render(c *gin.Context, code int, template string, data interface{}, message string) {
	RenderWith(c, code, template, data, nil, message)
}

// RenderWith is Render with extra values that only the HTML page receives.
func RenderWith(c *gin.Context, code int, template string, data interface{}, extra map[string]interface{}, message string) {
	if WantsJSON(c) || template == "" {
		status := "success"
		if code >= http.StatusBadRequest {
			status = "error"
		}
		c.JSON(code, APIResponse{
			Status:  status,
			Code:    code,
			Message: message,
			TraceID: c.GetString("trace_id"),
			Data:    data,
		})
		return
	}
	view := NewView(c, data)
	view.Extra = extra
	c.HTML(code, template, view)
}

// RenderForm re-renders a form page keeping the submitted values.
func RenderForm(c *gin.Context, code int, template string, form interface{}, errs FieldErrors, data interface{}) {
	if WantsJSON(c) {
		resp := APIResponse{
			Status:  "success",
			Code:    code,
			TraceID: c.GetString("trace_id"),
			Data:    data,
		}
		if len(errs) > 0 {
			resp.Status = "error"
			resp.Message = "Validation failed"
			resp.Errors = errs
		}
		c.JSON(code, resp)
		return
	}
	view := NewView(c, data)
	view.Form = form
	view.Errors = errs
	c.HTML(code, template, view)
}

func NewView(c *gin.Context, data interface{}) View {
	return View{
		Lang:    c.GetString("lang"),
		Path:    c.GetString("lang_path"),
		Query:   c.Request.URL.RawQuery,
		TraceID: c.GetString("trace_id"),
		Flashes: flash.Consume(c),
		Data:    data,
	}
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	if !WantsJSON(c) {
		view := NewView(c, gin.H{"Code": code, "Message": message})
		if code == http.StatusNotFound {
			c.HTML(code, "404.html", view)
			return
		}
		c.HTML(code, "error.html", view)
		return
	}
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	log := zap.L().With(
		zap.String("trace_id", c.GetString("trace_id")),
		zap.String("path", c.Request.URL.Path),
	)

	switch {
	case errors.Is(err, ErrProductNotFound):
		log.Warn("Requested product not found", zap.Error(err))
		RespondError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, ErrCategoryNotFound):
		log.Warn("Requested category not found", zap.Error(err))
		RespondError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, ErrPageNotFound):
		log.Warn("Requested page out of range", zap.Error(err))
		RespondError(c, http.StatusNotFound, "Page not found")
	case errors.Is(err, ErrInvalidPrice):
		RespondError(c, http.StatusBadRequest, "Price must be a decimal number")
	case errors.Is(err, ErrUploadFailed):
		log.Error("Upload error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Could not store the uploaded image")
	case errors.Is(err, ErrDatabaseError):
		log.Error("Database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error("Unknown error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// BindingErrors flattens validator failures into field -> tag pairs.
// Errors that are not validation failures (bad number syntax, etc.) are
// reported against the "form" key.
func BindingErrors(err error) FieldErrors {
	out := FieldErrors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = fe.Tag()
		}
		return out
	}
	out["form"] = "invalid"
	return out
}

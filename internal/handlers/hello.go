package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"serverless-router/pkg/lambda"

	"github.com/go-playground/validator/v10"
)

// HelloHandler serves the example and health endpoints
type HelloHandler struct {
	validate *validator.Validate
	stage    string
	mode     string
}

// NewHelloHandler creates a new hello handler. mode is the deployment mode
// reported by the health endpoint ("serverless" or "server").
func NewHelloHandler(stage, mode string) *HelloHandler {
	return &HelloHandler{
		validate: newValidator(),
		stage:    stage,
		mode:     mode,
	}
}

type helloQuery struct {
	Name string `json:"name" validate:"omitempty,alpha,max=64"`
	Lang string `json:"lang" validate:"omitempty,oneof=en es fr"`
}

type helloResponse struct {
	Message   string `json:"message"`
	Stage     string `json:"stage"`
	RequestID string `json:"request_id"`
}

var credentialHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"x-api-key":           {},
}

var greetings = map[string]string{
	"en": "Hello",
	"es": "Hola",
	"fr": "Bonjour",
}

// HandleHello greets the caller, optionally by name
// @Summary Hello
// @Description Greet the caller by name in the requested language
// @Tags examples
// @Produce json
// @Param name query string false "Name to greet (letters only)"
// @Param lang query string false "Language" Enums(en, es, fr)
// @Success 200 {object} helloResponse
// @Failure 400 {object} ErrorResponse
// @Router / [get]
func (h *HelloHandler) HandleHello(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	query := helloQuery{
		Name: req.QueryParams["name"],
		Lang: req.QueryParams["lang"],
	}
	if err := h.validate.StructCtx(ctx, query); err != nil {
		return badRequest(req, err)
	}

	name := query.Name
	if name == "" {
		name = "World"
	}
	lang := query.Lang
	if lang == "" {
		lang = "en"
	}

	return lambda.JSON(http.StatusOK, helloResponse{
		Message:   fmt.Sprintf("%s, %s!", greetings[lang], name),
		Stage:     h.stage,
		RequestID: req.RequestID,
	})
}

// HandleEcho returns the normalized request as JSON, without credentials
// @Summary Echo
// @Description Return the request as the router sees it. Authorization and cookie headers are left out.
// @Tags examples
// @Accept json
// @Produce json
// @Success 200 {object} lambda.Request
// @Router /echo [get]
// @Router /echo [post]
func (h *HelloHandler) HandleEcho(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	echo := *req
	echo.Headers = make(map[string]string, len(req.Headers))
	for key, value := range req.Headers {
		if _, secret := credentialHeaders[strings.ToLower(key)]; secret {
			continue
		}
		echo.Headers[key] = value
	}
	return lambda.JSON(http.StatusOK, &echo)
}

// HandleHealth reports liveness
// @Summary Health check
// @Description Report service status, stage and deployment mode
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HelloHandler) HandleHealth(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"stage":     h.stage,
		"mode":      h.mode,
	})
}

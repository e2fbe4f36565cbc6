package ginhttp

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"serverless-router/internal/config"
	"serverless-router/internal/middleware"
	"serverless-router/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router routes requests received by the local gin server
type Router = lambda.Router[*gin.Context, lambda.Response]

// NewRouter creates a router fed from gin contexts
func NewRouter(opts ...lambda.Option) *Router {
	return lambda.NewRouter(ToRequest, FromResponse, opts...)
}

// FromResponse keeps the normalized response; Write sends it
func FromResponse(resp lambda.Response) lambda.Response {
	return resp.WithDefaults()
}

// NewEngine builds the gin engine. Every request that no gin route claims
// is handed to the router, so the router sees the same requests it would
// in Lambda. metricsHandler may be nil.
func NewEngine(cfg *config.Config, r *Router, metricsHandler http.Handler) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(cfg.Server.CORSAllowOrigin))

	if cfg.Server.RateLimitRPS > 0 {
		burst := cfg.Server.RateLimitBurst
		if burst == 0 {
			burst = int(cfg.Server.RateLimitRPS) + 1
		}
		engine.Use(middleware.RateLimiter(cfg.Server.RateLimitRPS, burst))
	}

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Metrics.Enabled && metricsHandler != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metricsHandler))
	}

	engine.NoRoute(func(c *gin.Context) {
		Write(c, r.Handle(c.Request.Context(), c))
	})

	return engine
}

// ToRequest converts a gin request to a normalized request. Bodies that are
// not valid UTF-8 are base64 encoded, as API Gateway does for binary media.
func ToRequest(c *gin.Context) *lambda.Request {
	body, isBase64 := readBody(c)

	requestID := c.GetString(middleware.RequestIDKey)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &lambda.Request{
		Path:            c.Request.URL.Path,
		Method:          c.Request.Method,
		Headers:         flatten(c.Request.Header, ", "),
		PathParams:      map[string]string{},
		QueryParams:     lastValues(c.Request.URL.Query()),
		Body:            body,
		IsBase64Encoded: isBase64,
		SourceIP:        c.ClientIP(),
		RequestID:       requestID,
	}
}

// Write sends a normalized response through gin
func Write(c *gin.Context, resp lambda.Response) {
	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(middleware.RequestIDKey),
				"path":       c.Request.URL.Path,
				"error":      err.Error(),
			}).Error("Invalid base64 response body")
			c.Status(http.StatusInternalServerError)
			return
		}
		body = decoded
	}

	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Status(resp.StatusCode)
	if _, err := c.Writer.Write(body); err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"error":      err.Error(),
		}).Warn("Failed to write response body")
	}
}

func readBody(c *gin.Context) (string, bool) {
	if c.Request.Body == nil {
		return "", false
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		}).Warn("Failed to read request body")
		return "", false
	}

	if utf8.Valid(data) {
		return string(data), false
	}
	return base64.StdEncoding.EncodeToString(data), true
}

func flatten(values map[string][]string, sep string) map[string]string {
	out := make(map[string]string, len(values))
	for key, vals := range values {
		out[key] = strings.Join(vals, sep)
	}
	return out
}

func lastValues(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[len(vals)-1]
		}
	}
	return out
}

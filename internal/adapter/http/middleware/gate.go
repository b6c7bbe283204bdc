// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"master_booking/internal/infrastructure/metrics"
	"master_booking/internal/ratelimit"
	"master_booking/internal/security"
	"master_booking/pkg"
)

// Body size limits.
const (
	GeneralBodyLimit int64 = 10 << 20
	PaymentBodyLimit int64 = 64 << 10
	WebhookBodyLimit int64 = 1 << 20
)

const admissionKey = "gate.admission"

// Policy is the per-route admission configuration.
type Policy struct {
	Name         string
	Class        ratelimit.Class
	MaxBodyBytes int64
	RequireBody  bool
}

// Admission is the outcome of running a request through the gate.
type Admission struct {
	Valid          bool
	Preflight      bool
	Status         int
	Headers        http.Header
	Body           []byte
	Error          *pkg.AppError
	ClientIdentity string
}

// Gate runs the ordered admission checks for every public endpoint.
type Gate struct {
	cors    *security.CORSResolver
	limiter *ratelimit.Limiter
}

func NewGate(cors *security.CORSResolver, limiter *ratelimit.Limiter) *Gate {
	return &Gate{cors: cors, limiter: limiter}
}

// Evaluate checks, in order: CORS preflight, rate limit, body size, JSON body.
// It stops at the first failure.
func (g *Gate) Evaluate(r *http.Request, p Policy) Admission {
	ctx := r.Context()
	ident := security.ClientIdentity(r)
	headers := g.cors.Resolve(r.Header.Get("Origin"))

	adm := Admission{Headers: headers, ClientIdentity: ident}

	if r.Method == http.MethodOptions {
		adm.Valid = true
		adm.Preflight = true
		adm.Status = http.StatusOK
		return adm
	}

	d := g.limiter.Check(ctx, ident+":"+p.Name, p.Class)
	headers.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	headers.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	headers.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.UnixMilli(), 10))
	if !d.Allowed {
		headers.Set("Retry-After", strconv.Itoa(d.RetryAfterSeconds()))
		metrics.RateLimitRejections.WithLabelValues(string(p.Class)).Inc()
		security.LogEvent(ctx, security.SeverityHigh, "rate_limit_exceeded",
			slog.String("ip", ident), slog.String("route", p.Name), slog.String("method", r.Method))
		return reject(adm, pkg.NewRateLimitError())
	}

	if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Body == nil {
		adm.Valid = true
		return adm
	}

	limit := p.MaxBodyBytes
	if limit <= 0 {
		limit = GeneralBodyLimit
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		slog.WarnContext(ctx, "[gate][middleware] read body failed", "route", p.Name, "err", err)
		return reject(adm, pkg.NewClientInputError("Could not read request body"))
	}
	if int64(len(body)) > limit {
		security.LogEvent(ctx, security.SeverityMedium, "payload_too_large",
			slog.String("ip", ident), slog.String("route", p.Name), slog.Int64("limit", limit))
		return reject(adm, pkg.NewPayloadTooLargeError())
	}
	adm.Body = body

	if p.RequireBody {
		if len(bytes.TrimSpace(body)) == 0 {
			return reject(adm, pkg.NewClientInputError("Request body is required"))
		}
		if !json.Valid(body) {
			security.LogEvent(ctx, security.SeverityLow, "invalid_json",
				slog.String("ip", ident), slog.String("route", p.Name))
			return reject(adm, pkg.NewClientInputError("Invalid JSON in request body"))
		}
	}

	adm.Valid = true
	return adm
}

func reject(adm Admission, appErr *pkg.AppError) Admission {
	adm.Valid = false
	adm.Status = appErr.HTTPStatus
	adm.Error = appErr
	return adm
}

// Handler admits requests for one route. Rejections and preflights never reach the next handler.
func (g *Gate) Handler(p Policy) gin.HandlerFunc {
	if p.Name == "" {
		panic("gate: policy without a name")
	}
	return func(c *gin.Context) {
		adm := g.Evaluate(c.Request, p)
		for k, vs := range adm.Headers {
			for _, v := range vs {
				c.Writer.Header().Add(k, v)
			}
		}

		switch {
		case adm.Preflight:
			c.String(http.StatusOK, "ok")
			c.Abort()
		case !adm.Valid:
			c.AbortWithStatusJSON(adm.Status, adm.Error.ToHTTPError())
		default:
			c.Set(admissionKey, adm)
			c.Next()
		}
	}
}

// MethodNotAllowed answers a known path hit with the wrong method. It carries the
// same CORS and security headers as a gated response.
func (g *Gate) MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, vs := range g.cors.Resolve(c.GetHeader("Origin")) {
			for _, v := range vs {
				c.Writer.Header().Add(k, v)
			}
		}
		appErr := pkg.NewMethodNotAllowedError()
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

var errNoAdmission = errors.New("request did not pass the gate")

func admissionFrom(c *gin.Context) (Admission, bool) {
	v, ok := c.Get(admissionKey)
	if !ok {
		return Admission{}, false
	}
	adm, ok := v.(Admission)
	return adm, ok
}

// RawBody returns the body bytes the gate read.
func RawBody(c *gin.Context) ([]byte, error) {
	adm, ok := admissionFrom(c)
	if !ok {
		return nil, errNoAdmission
	}
	return adm.Body, nil
}

// DecodeBody unmarshals the admitted body into dst.
func DecodeBody(c *gin.Context, dst any) error {
	body, err := RawBody(c)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return json.Unmarshal(body, dst)
}

// ClientIdentity returns the caller identity resolved by the gate.
func ClientIdentity(c *gin.Context) string {
	if adm, ok := admissionFrom(c); ok {
		return adm.ClientIdentity
	}
	return security.ClientIdentity(c.Request)
}

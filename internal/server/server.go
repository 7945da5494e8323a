package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paisacalc/paisa/internal/calculation"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Server exposes the calculation engine over HTTP with response caching,
// per-client rate limiting and request metrics.
type Server struct {
	cfg     *Config
	logger  *zap.Logger
	cache   Cache
	limiter *RateLimiter
}

// New wires a server from its parts. The cache may be Redis or in-process.
func New(cfg *Config, logger *zap.Logger, cache Cache) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger,
		cache:   cache,
		limiter: NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	}
}

// Close stops the background rate limiter.
func (s *Server) Close() {
	s.limiter.Stop()
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(
		"POST /api/v1/calculate/{product}",
		RateLimitMiddleware(s.limiter, http.HandlerFunc(s.handleCalculate)),
	)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type calculateResponse struct {
	Product string `json:"product"`
	Result  any    `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	product := r.PathValue("product")

	ctx, span := otel.Tracer(s.cfg.ServiceName).Start(r.Context(), "calculate."+product)
	defer span.End()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, product, http.StatusBadRequest, "failed to read request body")
		return
	}

	key := cacheKey(product, body)
	if cached, ok := s.cache.Get(ctx, key); ok {
		CacheLookups.WithLabelValues("hit").Inc()
		CalculationRequests.WithLabelValues(product, "ok").Inc()
		RequestDuration.WithLabelValues(product).Observe(time.Since(start).Seconds())
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write([]byte(cached))
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()

	result, err := dispatch(product, body)
	if err != nil {
		status := http.StatusBadRequest
		if err == errUnknownProduct {
			status = http.StatusNotFound
		}
		s.writeError(w, product, status, err.Error())
		return
	}

	payload, err := json.Marshal(calculateResponse{Product: product, Result: result})
	if err != nil {
		s.writeError(w, product, http.StatusInternalServerError, "failed to encode response")
		return
	}

	if err := s.cache.Set(ctx, key, string(payload), s.cfg.CacheTTL); err != nil {
		s.logger.Warn("cache write failed", zap.String("product", product), zap.Error(err))
	}

	CalculationRequests.WithLabelValues(product, "ok").Inc()
	RequestDuration.WithLabelValues(product).Observe(time.Since(start).Seconds())
	s.logger.Info("calculation served",
		zap.String("product", product),
		zap.Duration("elapsed", time.Since(start)))

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (s *Server) writeError(w http.ResponseWriter, product string, status int, message string) {
	CalculationRequests.WithLabelValues(product, "error").Inc()
	s.logger.Warn("calculation rejected",
		zap.String("product", product),
		zap.Int("status", status),
		zap.String("reason", message))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func cacheKey(product string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(product))
	h.Write([]byte{0})
	h.Write(body)
	return "paisa:" + hex.EncodeToString(h.Sum(nil))
}

var errUnknownProduct = fmt.Errorf("unknown product")

// dispatch decodes the request body for the product and runs its calculation.
func dispatch(product string, body []byte) (any, error) {
	decode := func(v any) error {
		if len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("invalid request body: %w", err)
		}
		return nil
	}

	switch product {
	case "sip":
		var in domain.SIPInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateSIP(in), nil
	case "lumpsum":
		var in domain.LumpsumInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateLumpsum(in), nil
	case "stepup-sip":
		var in domain.StepUpSIPInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateStepUpSIP(in), nil
	case "fd":
		var in domain.FDInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateFD(in), nil
	case "rd":
		var in domain.RDInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateRD(in), nil
	case "ppf":
		var in domain.PPFInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculatePPF(in), nil
	case "nsc":
		var in domain.NSCInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateNSC(in), nil
	case "ssy":
		var in domain.SSYInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateSSY(in), nil
	case "epf":
		var in domain.EPFInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateEPF(in), nil
	case "nps":
		var in domain.NPSInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateNPS(in), nil
	case "gratuity":
		var in domain.GratuityInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateGratuity(in), nil
	case "swp":
		var in domain.SWPInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateSWP(in), nil
	case "simple-interest":
		var in domain.SimpleInterestInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateSimpleInterest(in), nil
	case "compound-interest":
		var in domain.CompoundInterestInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateCompoundInterest(in), nil
	case "mf-return":
		var in domain.MFReturnInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return calculation.CalculateMFReturn(in), nil
	default:
		return nil, errUnknownProduct
	}
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/stats"
	"github.com/sells-group/geokit-cli/internal/table"
	"github.com/sells-group/geokit-cli/internal/transform"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a local HTTP API over the tabular operations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))
		r.Use(rateLimit(rate.Limit(cfg.Server.RatePerSecond), cfg.Server.RateBurst))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Post("/api/normality", handleNormality)
		r.Post("/api/correlation", handleCorrelation)
		r.Post("/api/describe", handleDescribe)
		r.Post("/api/one-hot", handleOneHot)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// rateLimit applies a shared token bucket to every request.
func rateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// tableRequest is the shared request shape: a frame as header + rows, or a
// plain numeric array.
type tableRequest struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	Data   []float64  `json:"data"`
}

// frame builds a Frame from the request's header and rows.
func (req tableRequest) frame() (*table.Frame, error) {
	return table.New(req.Header, req.Rows)
}

func handleNormality(w http.ResponseWriter, r *http.Request) {
	var req struct {
		tableRequest
		Columns []string `json:"columns"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var in stats.Input
	if len(req.Data) > 0 {
		in = stats.ArrayInput(req.Data)
	} else {
		f, err := req.frame()
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		in = stats.FrameInput(f)
	}

	results, err := stats.Normality(in, req.Columns...)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func handleCorrelation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		tableRequest
		Method     string `json:"method"`
		MinPeriods int    `json:"min_periods"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Method == "" {
		req.Method = string(stats.Pearson)
	}

	method, err := stats.ParseCorrelationMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	f, err := req.frame()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	matrix, err := stats.Correlation(f, method, req.MinPeriods)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}

func handleDescribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		tableRequest
		Columns []string `json:"columns"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	f, err := req.frame()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := stats.Describe(f, req.Columns...)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func handleOneHot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		tableRequest
		Columns      []string `json:"columns"`
		DropCategory string   `json:"drop_category"`
		KeepOriginal bool     `json:"keep_original"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.DropCategory == "" {
		req.DropCategory = string(transform.DropNone)
	}

	drop, err := transform.ParseDropCategory(req.DropCategory)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	f, err := req.frame()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	encoded, err := transform.OneHot(f, transform.OneHotOptions{
		Columns:            req.Columns,
		Drop:               drop,
		DropEncodedColumns: !req.KeepOriginal,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	header, rows := encoded.Rows()
	writeJSON(w, http.StatusOK, map[string]any{
		"header": header,
		"rows":   rows,
	})
}

// statusFor maps classified input errors to 400, everything else to 500.
func statusFor(err error) int {
	for _, kind := range []error{
		check.ErrEmptyInput,
		check.ErrInvalidColumn,
		check.ErrNonNumericData,
		check.ErrInvalidParameterValue,
		check.ErrSampleSizeExceeded,
		check.ErrNumericValueSign,
	} {
		if errors.Is(err, kind) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// Package server hosts the assist proxy. It keeps the upstream API key on
// the server side so clients never carry a credential, forwards prompt
// pairs to the upstream messages endpoint, and optionally serves static
// assets.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/logger"
)

// Config carries the server's knobs. APIKey defaults to the CLAUDE_API_KEY
// environment variable; StaticDir is optional.
type Config struct {
	Addr      string
	APIKey    string
	StaticDir string
	Debug     bool
}

// Server is the assist proxy.
type Server struct {
	cfg      Config
	engine   *gin.Engine
	upstream *http.Client
	// upstreamURL is swappable so tests can point at a local stub.
	upstreamURL string
}

func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = constants.DefaultServeAddr
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(constants.ServerKeyEnv)
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:         cfg,
		upstream:    &http.Client{Timeout: 60 * time.Second},
		upstreamURL: constants.AssistUpstreamURL,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(cors.Default())

	engine.POST(constants.AssistRoute, s.handleAssist)

	if cfg.StaticDir != "" {
		engine.Static("/assets", cfg.StaticDir)
	}

	s.engine = engine
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

type assistRequest struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"systemPrompt"`
}

type upstreamRequest struct {
	Model     string            `json:"model"`
	MaxTokens int               `json:"max_tokens"`
	System    string            `json:"system"`
	Messages  []upstreamMessage `json:"messages"`
}

type upstreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type upstreamResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (s *Server) handleAssist(c *gin.Context) {
	var req assistRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	if s.cfg.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured on server"})
		return
	}

	body := upstreamRequest{
		Model:     constants.AssistModel,
		MaxTokens: constants.AssistMaxTokens,
		System:    req.SystemPrompt,
		Messages:  []upstreamMessage{{Role: "user", Content: req.Prompt}},
	}

	status, out, err := s.callUpstream(c.Request.Context(), body)
	if err != nil {
		logger.Error("upstream call failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No response from Claude API"})
		return
	}
	if status != http.StatusOK {
		c.JSON(status, gin.H{"error": "Error from Claude API"})
		return
	}
	if len(out.Content) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Empty response from Claude API"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": out.Content[0].Text})
}

// callUpstream forwards the request to the messages endpoint. A transport
// error is distinct from a non-200 status so the handler can map them to
// different responses.
func (s *Server) callUpstream(ctx context.Context, body upstreamRequest) (int, *upstreamResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstreamURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.cfg.APIKey)
	req.Header.Set("anthropic-version", constants.AssistAPIVersion)

	res, err := s.upstream.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return res.StatusCode, nil, nil
	}

	var out upstreamResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return 0, nil, err
	}
	return res.StatusCode, &out, nil
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully. The proxy
// holds no state, so shutdown only drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("assist proxy listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

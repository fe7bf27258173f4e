package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rezonia/myinvois-gateway/internal/metrics"
	"github.com/rezonia/myinvois-gateway/internal/myinvois"
	"github.com/rezonia/myinvois-gateway/pkg/einvoice"
)

// Config holds server configuration
type Config struct {
	Address      string
	ClientID     string
	ClientSecret string
	APIBaseURL   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	processor *einvoice.Processor
	client    *myinvois.Client
	logger    *slog.Logger
	registry  *prometheus.Registry
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	logger := slog.Default()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// The API client is optional: without credentials the gateway still
	// builds and validates, but submit and proxy endpoints return 503.
	var client *myinvois.Client
	if config.ClientID != "" && config.ClientSecret != "" {
		clientOpts := []myinvois.ClientOption{myinvois.WithLogger(logger)}
		if config.APIBaseURL != "" {
			clientOpts = append(clientOpts, myinvois.WithBaseURL(config.APIBaseURL))
		}
		client = myinvois.NewClient(config.ClientID, config.ClientSecret, clientOpts...)
	}

	procOpts := []einvoice.Option{
		einvoice.WithLogger(logger),
		einvoice.WithMetrics(m),
	}
	if client != nil {
		procOpts = append(procOpts, einvoice.WithClient(client))
	}

	s := &Server{
		config:    config,
		router:    router,
		processor: einvoice.NewProcessor(procOpts...),
		client:    client,
		logger:    logger,
		registry:  registry,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/documents/build", s.handleBuild)
		v1.POST("/documents/validate", s.handleValidate)
		v1.POST("/documents/submit", s.handleSubmit)

		v1.GET("/documenttypes", s.handleDocumentTypes)
		v1.GET("/documenttypes/:id", s.handleDocumentType)
		v1.GET("/notifications", s.handleNotifications)
		v1.GET("/taxpayer/validate/:tin", s.handleValidateTIN)
		v1.GET("/taxpayer/search", s.handleSearchTIN)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleBuild(c *gin.Context) {
	var in einvoice.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	doc, err := s.processor.Prepare(in)
	if err != nil {
		var verr *einvoice.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
				Valid:      false,
				Violations: verr.Violations,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BuildResponse{
		CodeNumber: doc.CodeNumber,
		Document:   doc.Canonical,
		Hash:       doc.Hash,
		Encoded:    doc.Encoded,
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var in einvoice.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	violations := s.processor.Validate(in)
	c.JSON(http.StatusOK, ValidationResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

func (s *Server) handleSubmit(c *gin.Context) {
	if s.client == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "no API credentials configured"})
		return
	}

	var in einvoice.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	requestID := uuid.NewString()
	s.logger.Info("submit request",
		slog.String("request_id", requestID),
		slog.String("code_number", in.ID))

	result, err := s.processor.Submit(ctx, in)
	if err != nil {
		var verr *einvoice.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
				Valid:      false,
				Violations: verr.Violations,
			})
			return
		}
		var rerr *myinvois.RejectionError
		if errors.As(err, &rerr) {
			c.JSON(http.StatusUnprocessableEntity, SubmitResponse{
				SubmissionUID: result.SubmissionUID,
				Accepted:      result.AcceptedDocuments,
				Rejected:      result.RejectedDocuments,
			})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		SubmissionUID: result.SubmissionUID,
		Accepted:      result.AcceptedDocuments,
	})
}

func (s *Server) handleDocumentTypes(c *gin.Context) {
	if s.client == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "no API credentials configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	types, err := s.client.DocumentTypes(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": types})
}

func (s *Server) handleDocumentType(c *gin.Context) {
	if s.client == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "no API credentials configured"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "document type id must be numeric"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	dt, err := s.client.DocumentType(ctx, id)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dt)
}

func (s *Server) handleNotifications(c *gin.Context) {
	if s.client == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "no API credentials configured"})
		return
	}

	q := myinvois.NotificationQuery{
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
		Type:     c.Query("type"),
		Language: c.Query("language"),
		Status:   c.Query("status"),
		Channel:  c.Query("channel"),
	}
	if v := c.Query("pageNo"); v != "" {
		q.PageNo, _ = strconv.Atoi(v)
	}
	if v := c.Query("pageSize"); v != "" {
		q.PageSize, _ = strconv.Atoi(v)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	notifs, err := s.client.Notifications(ctx, q)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": notifs})
}

func (s *Server) handleValidateTIN(c *gin.Context) {
	if s.client == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "no API credentials configured"})
		return
	}

	tin := c.Param("tin")
	idType := c.Query("idType")
	idValue := c.Query("idValue")
	if tin == "" || idType == "" || idValue == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "tin, idType and idValue are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	valid, err := s.client.ValidateTIN(ctx, tin, idType, idValue)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tin": tin, "valid": valid})
}

func (s *Server) handleSearchTIN(c *gin.Context) {
	if s.client == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "no API credentials configured"})
		return
	}

	idType := c.Query("idType")
	idValue := c.Query("idValue")
	taxpayerName := c.Query("taxpayerName")
	if idType == "" && idValue == "" && taxpayerName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "idType/idValue or taxpayerName is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	tin, err := s.client.SearchTIN(ctx, idType, idValue, taxpayerName)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tin": tin})
}

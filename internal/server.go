package internal

import (
	"bytes"
	"cpay/config"
	"cpay/entity"
	"cpay/services"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"io"
	"net"
	"net/http"
	"strings"
)

const (
	createForm     = "/form"
	createFormHtml = "/form/html"
	createChecksum = "/checksum"

	formEncoded = "application/x-www-form-urlencoded"
	metricsPath    = "/metrics"

	maxBodySize = 64 << 10
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	metrics    *Metrics
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf:   conf,
		logger: newLogger("server", false, nil, zap.NewNop()),
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(createForm, s.createForm)
	router.POST(createFormHtml, s.createFormHtml)
	router.POST(createChecksum, s.createChecksum)
	router.GET(metricsPath, s.serveMetrics)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetMetrics(metrics *Metrics) {
	s.metrics = metrics
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) createForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r = s.withRequestID(w, r)
	form, ok := s.buildForm(w, r)
	if !ok {
		return
	}
	if strings.Contains(r.Header.Get("Accept"), formEncoded) {
		if !form.HasChecksum() {
			s.noChecksum(w, r, "create form")
			return
		}
		w.Header().Set("Content-Type", formEncoded)
		w.Header().Set("X-Form-Action", form.Action)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, form.Encode())
		return
	}
	s.writeJSON(w, http.StatusOK, form)
}

func (s *Server) createFormHtml(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r = s.withRequestID(w, r)
	form, ok := s.buildForm(w, r)
	if !ok {
		return
	}
	if !form.HasChecksum() {
		s.noChecksum(w, r, "render form")
		return
	}
	var page bytes.Buffer
	if err := RenderHTML(&page, form); err != nil {
		s.logger.WithRequestId(GetRequestID(r.Context())).Error("render form", err)
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Bytes())
}

// noChecksum answers 204 for a form that failed lenient validation.
func (s *Server) noChecksum(w http.ResponseWriter, r *http.Request, operation string) {
	s.logger.WithRequestId(GetRequestID(r.Context())).Warn(fmt.Sprintf("%s: form has no checksum", operation))
	w.WriteHeader(http.StatusNoContent)
}

// buildForm answers the request itself when it returns false.
func (s *Server) buildForm(w http.ResponseWriter, r *http.Request) (*entity.Form, bool) {
	request, err := s.readFields(r)
	if err != nil {
		s.logger.WithRequestId(GetRequestID(r.Context())).Warn(fmt.Sprintf("create form: %v", err))
		s.writeError(w, r, err)
		return nil, false
	}
	form, err := s.payments.CreateForm(r.Context(), request)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return form, true
}

func (s *Server) createChecksum(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r = s.withRequestID(w, r)
	fields, err := s.readFields(r)
	if err != nil {
		s.logger.WithRequestId(GetRequestID(r.Context())).Warn(fmt.Sprintf("create checksum: %v", err))
		s.writeError(w, r, err)
		return
	}
	result, err := s.payments.GenerateChecksum(r.Context(), fields)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, http.StatusOK, result.Public())
}

func (s *Server) serveMetrics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.metrics == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.metrics.Handler().ServeHTTP(w, r)
}

func (s *Server) withRequestID(w http.ResponseWriter, r *http.Request) *http.Request {
	ctx := WithRequestID(r.Context())
	w.Header().Set("X-Request-ID", GetRequestID(ctx))
	return r.WithContext(ctx)
}

func (s *Server) readFields(r *http.Request) (*entity.FieldMap, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read request body: %v", ErrBadRequest, err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%w: request body too large", ErrBadRequest)
	}
	return ParseFieldMap(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	response := entity.ErrorResponse{
		Error:     err.Error(),
		RequestId: GetRequestID(r.Context()),
	}
	var missing *MissingFieldsError
	if errors.As(err, &missing) {
		response.MissingFields = missing.Fields
	}
	var invalid *InvalidFieldsError
	if errors.As(err, &invalid) {
		response.InvalidFields = invalid.Fields
	}
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.Error = http.StatusText(status)
	}
	s.writeJSON(w, status, response)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("encode response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

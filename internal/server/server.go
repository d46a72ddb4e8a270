// Package server exposes the store over a local HTTP API. It is a
// thin consumer: every mutation goes through the store's message
// protocol, so the reducer semantics hold no matter which surface
// drives them.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-ledger/internal/codec"
	"github.com/rezonia/invoice-ledger/internal/model"
	"github.com/rezonia/invoice-ledger/internal/money"
	"github.com/rezonia/invoice-ledger/internal/store"
	"github.com/rezonia/invoice-ledger/internal/words"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	store  *store.Store
	sealer *codec.Sealer
}

// NewServer creates a new API server over the given store
func NewServer(config *Config, st *store.Store) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
		store:  st,
		sealer: codec.NewStaticSealer(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/invoices", s.handleListInvoices)
		api.POST("/invoices", s.handleCreateInvoice)
		api.PUT("/invoices/:id", s.handleUpdateInvoice)
		api.DELETE("/invoices/:id", s.handleDeleteInvoice)

		api.GET("/clients", s.handleListClients)
		api.POST("/clients", s.handleCreateClient)
		api.PUT("/clients/:id", s.handleUpdateClient)
		api.DELETE("/clients/:id", s.handleDeleteClient)

		api.GET("/settings", s.handleGetSettings)
		api.PUT("/settings", s.handleUpdateSettings)

		api.POST("/totals", s.handleTotals)
		api.GET("/export", s.handleExport)
		api.POST("/import", s.handleImport)
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

// Router exposes the handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": codec.Version})
}

func (s *Server) handleListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.State().Invoices)
}

func (s *Server) handleCreateInvoice(c *gin.Context) {
	var inv model.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice payload", Details: err.Error()})
		return
	}

	created := s.store.CreateInvoice(inv)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateInvoice(c *gin.Context) {
	id := c.Param("id")
	if !s.invoiceExists(id) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "invoice not found"})
		return
	}

	var inv model.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice payload", Details: err.Error()})
		return
	}
	inv.ID = id
	inv.UpdatedAt = time.Now().UTC()

	s.store.Dispatch(store.UpdateInvoice{Invoice: inv})
	c.JSON(http.StatusOK, inv)
}

func (s *Server) handleDeleteInvoice(c *gin.Context) {
	s.store.Dispatch(store.DeleteInvoice{ID: c.Param("id")})
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListClients(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.State().Clients)
}

func (s *Server) handleCreateClient(c *gin.Context) {
	var client model.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client payload", Details: err.Error()})
		return
	}
	if client.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "client name is required"})
		return
	}

	if client.ID == "" {
		created := model.NewClient(client.Name, client.Email)
		created.Company = client.Company
		created.Phone = client.Phone
		created.Address = client.Address
		created.City = client.City
		created.PostalCode = client.PostalCode
		created.Country = client.Country
		created.VATNumber = client.VATNumber
		created.Notes = client.Notes
		client = created
	}

	s.store.Dispatch(store.AddClient{Client: client})
	c.JSON(http.StatusCreated, client)
}

func (s *Server) handleUpdateClient(c *gin.Context) {
	id := c.Param("id")
	if !s.clientExists(id) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
		return
	}

	var client model.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client payload", Details: err.Error()})
		return
	}
	if client.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "client name is required"})
		return
	}
	client.ID = id

	s.store.Dispatch(store.UpdateClient{Client: client})
	c.JSON(http.StatusOK, client)
}

func (s *Server) handleDeleteClient(c *gin.Context) {
	s.store.Dispatch(store.DeleteClient{ID: c.Param("id")})
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.State().Settings)
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var settings model.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid settings payload", Details: err.Error()})
		return
	}

	s.store.Dispatch(store.UpdateSettings{Settings: settings})
	c.JSON(http.StatusOK, settings)
}

func (s *Server) handleTotals(c *gin.Context) {
	var req TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid totals payload", Details: err.Error()})
		return
	}

	vatRate := req.VATRate
	if vatRate == nil {
		rate := s.store.State().Settings.Invoice.DefaultVATRate
		vatRate = &rate
	}

	totals := money.ComputeTotals(req.Items, *vatRate, req.DiscountType, req.DiscountValue)

	resp := TotalsResponse{Totals: totals}
	if req.InWords {
		resp.TotalInWords = words.Amount(totals.Total, currencyNouns(s.store.State().Settings.Invoice.Currency))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleExport(c *gin.Context) {
	bundle := s.store.ExportBundle()

	var blob []byte
	var err error
	if c.Query("encrypted") == "true" {
		blob, err = codec.ExportEncrypted(bundle, s.sealer)
	} else {
		blob, err = codec.Export(bundle)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "export failed", Details: err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice-ledger-export.json"`)
	c.Data(http.StatusOK, "application/json", blob)
}

func (s *Server) handleImport(c *gin.Context) {
	blob, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read import payload", Details: err.Error()})
		return
	}

	bundle, err := codec.Import(blob, s.sealer)
	if err != nil {
		var verrs *model.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, ImportResponse{Success: false, Errors: verrs.Problems})
			return
		}
		c.JSON(http.StatusBadRequest, ImportResponse{Success: false, Errors: []string{err.Error()}})
		return
	}

	s.store.ApplyImport(bundle)
	c.JSON(http.StatusOK, ImportResponse{
		Success:  true,
		Invoices: len(bundle.Invoices),
		Clients:  len(bundle.Clients),
	})
}

func (s *Server) invoiceExists(id string) bool {
	for _, inv := range s.store.State().Invoices {
		if inv.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) clientExists(id string) bool {
	for _, client := range s.store.State().Clients {
		if client.ID == id {
			return true
		}
	}
	return false
}

func currencyNouns(code string) words.Currency {
	if code == "BGN" {
		return words.BGN
	}
	return words.EUR
}

// Package server wires the HTTP surface. Handlers stay thin: bind,
// call the feature service, translate errors in one middleware.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/config"
	"github.com/servostack/garagedesk/internal/customer"
	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	"github.com/servostack/garagedesk/internal/expense"
	expensedomain "github.com/servostack/garagedesk/internal/expense/domain"
	"github.com/servostack/garagedesk/internal/invoice"
	invoicedomain "github.com/servostack/garagedesk/internal/invoice/domain"
	"github.com/servostack/garagedesk/internal/item"
	itemdomain "github.com/servostack/garagedesk/internal/item/domain"
	"github.com/servostack/garagedesk/internal/jobcard"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
	"github.com/servostack/garagedesk/internal/offers"
	"github.com/servostack/garagedesk/internal/providers"
	"github.com/servostack/garagedesk/internal/user"
	userdomain "github.com/servostack/garagedesk/internal/user/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	providers.Module,
	customer.Module,
	item.Module,
	user.Module,
	jobcard.Module,
	expense.Module,
	invoice.Module,
	offers.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(HTTPMetrics())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	Profile     *config.GarageProfileHolder
	CustomerSvc customerdomain.Service
	ItemSvc     itemdomain.Service
	UserSvc     userdomain.Service
	JobCardSvc  jobcarddomain.Service
	ExpenseSvc  expensedomain.Service
	InvoiceSvc  invoicedomain.Service
	OfferSvc    offers.Service
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	genID       *snowflake.Node
	profile     *config.GarageProfileHolder
	customerSvc customerdomain.Service
	itemSvc     itemdomain.Service
	userSvc     userdomain.Service
	jobCardSvc  jobcarddomain.Service
	expenseSvc  expensedomain.Service
	invoiceSvc  invoicedomain.Service
	offerSvc    offers.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		profile:     p.Profile,
		customerSvc: p.CustomerSvc,
		itemSvc:     p.ItemSvc,
		userSvc:     p.UserSvc,
		jobCardSvc:  p.JobCardSvc,
		expenseSvc:  p.ExpenseSvc,
		invoiceSvc:  p.InvoiceSvc,
		offerSvc:    p.OfferSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.POST("/customers/:id/vehicles", s.AddVehicle)
	api.GET("/customers/:id/vehicles", s.ListVehicles)
	api.DELETE("/customers/:id/vehicles/:vehicleId", s.RemoveVehicle)

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.ListItems)
	api.GET("/items/:id", s.GetItemByID)
	api.PATCH("/items/:id", s.UpdateItem)
	api.DELETE("/items/:id", s.DeleteItem)

	api.POST("/users", s.CreateUser)
	api.GET("/users", s.ListUsers)
	api.GET("/users/:id", s.GetUserByID)
	api.PATCH("/users/:id", s.UpdateUser)
	api.DELETE("/users/:id", s.DeleteUser)

	api.POST("/jobcards", s.CreateJobCard)
	api.GET("/jobcards", s.ListJobCards)
	api.GET("/jobcards/:id", s.GetJobCardByID)
	api.PATCH("/jobcards/:id", s.UpdateJobCard)
	api.POST("/jobcards/:id/close", s.CloseJobCard)

	api.POST("/expenses", s.CreateExpense)
	api.GET("/expenses", s.ListExpenses)
	api.GET("/expenses/:id", s.GetExpenseByID)
	api.PATCH("/expenses/:id", s.UpdateExpense)
	api.DELETE("/expenses/:id", s.DeleteExpense)

	api.GET("/invoices/next-number", s.NextInvoiceNumber)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.PATCH("/invoices/:id", s.UpdateInvoice)
	api.GET("/invoices/:id/pdf", s.DownloadInvoicePDF)

	api.POST("/offers/broadcast", s.BroadcastOffer)

	api.GET("/garage", s.GetGarageProfile)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

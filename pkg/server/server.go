package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/controller"
	"github.com/devsapp/serverless-aml-controller/pkg/datastore"
	"github.com/devsapp/serverless-aml-controller/pkg/handler"
	"github.com/devsapp/serverless-aml-controller/pkg/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ControllerServer struct {
	srv     *http.Server
	catalog *datastore.Catalog
	tracker *log.OperationTracker
}

func NewControllerServer(port string, dbType datastore.DatastoreType, mode string) (*ControllerServer, error) {
	// init catalog tables
	catalog, err := datastore.NewCatalog(dbType)
	if err != nil {
		logrus.Errorf("catalog init error %v", err)
		return nil, err
	}
	if config.ConfigGlobal.CatalogSeed != "" {
		if err := catalog.Import(config.ConfigGlobal.CatalogSeed); err != nil {
			logrus.Errorf("catalog seed %s import error %v", config.ConfigGlobal.CatalogSeed, err)
			catalog.Close()
			return nil, err
		}
	}

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := client.NewMetrics(registry)

	// submission tracker
	var monitor *log.Monitor
	if config.ConfigGlobal.SendLogToRemote() {
		monitor = log.NewMonitor(config.ConfigGlobal.LogRemoteService)
	}
	tracker := log.NewOperationTracker(config.ConfigGlobal.ServerName, monitor)

	// init controller
	transport := client.NewHttpTransport(time.Duration(config.ConfigGlobal.HttpTimeout)*time.Second,
		config.ConfigGlobal.RequestsPerSecond, metrics)
	opts := controller.OptionsFromConfig(config.ConfigGlobal)
	opts.Tracker = tracker
	ctrl, err := controller.NewController(transport, client.NewAzureTokenProvider(config.ConfigGlobal.TokenScope), opts)
	if err != nil {
		logrus.Errorf("controller init error %v", err)
		tracker.Close()
		catalog.Close()
		return nil, err
	}

	// init router
	if mode == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := newRouter(handler.NewControllerHandler(catalog, ctrl), registry)
	if err != nil {
		logrus.Errorf("router init error %v", err)
		tracker.Close()
		catalog.Close()
		return nil, err
	}

	return &ControllerServer{
		srv: &http.Server{
			Addr:    net.JoinHostPort("0.0.0.0", port),
			Handler: router,
		},
		catalog: catalog,
		tracker: tracker,
	}, nil
}

func newRouter(controllerHandler *handler.ControllerHandler, registry *prometheus.Registry) (*gin.Engine, error) {
	validator, err := handler.RequestValidator()
	if err != nil {
		return nil, err
	}
	router := gin.New()
	router.Use(CORSMiddleware())
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// auth permission check ahead of request validation
	var middlewares []gin.HandlerFunc
	if config.ConfigGlobal.EnableAuth {
		middlewares = append(middlewares, handler.ApiAuth(config.ConfigGlobal.ApiKeyHash))
	}
	middlewares = append(middlewares, validator)
	handler.RegisterHandlers(router.Group("", middlewares...), controllerHandler)
	router.NoRoute(controllerHandler.NoRouterHandler)
	return router, nil
}

// Start controller server
func (p *ControllerServer) Start() error {
	if err := p.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("listen: %s\n", err)
		return err
	}
	return nil
}

// Close shutdown controller server, timeout=shutdownTimeout
func (p *ControllerServer) Close(shutdownTimeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := p.srv.Shutdown(ctx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
		return err
	}
	if p.tracker != nil {
		p.tracker.Close()
	}
	if p.catalog != nil {
		if err := p.catalog.Close(); err != nil {
			logrus.Errorf("catalog close error %v", err)
		}
	}
	return nil
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "false")
		c.Next()
	}
}

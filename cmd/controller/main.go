package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/datastore"
	"github.com/devsapp/serverless-aml-controller/pkg/log"
	"github.com/devsapp/serverless-aml-controller/pkg/server"
	"github.com/devsapp/serverless-aml-controller/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	defaultPort       = "8000"
	defaultDBType     = datastore.SQLite
	defaultMode       = "product"
	shutdownTimeout   = 5 * time.Second // 5s
	defaultConfigPath = "config.yaml"
)

func handleSignal() {
	// Wait for interrupt signal to gracefully shutdown the server with
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")
}

func main() {
	port := flag.String("port", defaultPort, "server listen port, default 8000")
	dbType := flag.String("dbType", string(defaultDBType), "db type default sqlite")
	configFile := flag.String("config", defaultConfigPath, "default config path")
	mode := flag.String("mode", defaultMode, "run mode debug|dev|product")
	seed := flag.String("seed", "", "catalog seed file imported at start")
	hashKey := flag.String("hashKey", "", "print the bcrypt hash of an api key and exit")
	flag.Parse()

	// CONTROLLER_API_KEY_HASH value
	if *hashKey != "" {
		hash, err := utils.EncryptPassword(*hashKey)
		if err != nil {
			logrus.Fatalf("hash api key fail: %v", err)
		}
		fmt.Println(hash)
		return
	}

	log.InitLog(*mode)

	// init config
	if err := config.InitConfig(*configFile); err != nil {
		logrus.Fatalf("config init fail: %v", err)
	}
	if *seed != "" {
		config.ConfigGlobal.CatalogSeed = *seed
	}

	// init server and start
	controllerServer, err := server.NewControllerServer(*port, datastore.DatastoreType(*dbType), *mode)
	if err != nil {
		logrus.Fatal("controller server init fail")
	}
	go controllerServer.Start()

	// wait shutdown signal
	handleSignal()

	if err := controllerServer.Close(shutdownTimeout); err != nil {
		logrus.Fatal("Shutdown server fail")
	}

	logrus.Info("Server exiting")
}

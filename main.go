package main

import (
	"cpay/config"
	"cpay/internal"
	"cpay/services"
	"flag"
)

func main() {

	logger := internal.NewLogger("internal", false, nil)
	defer logger.Sync()

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	logger.Info("using config file: " + *configPath)
	conf, err := config.GetConfig(*configPath)
	if err != nil {
		logger.Error("boot", err)
		return
	}

	var mongo services.Database
	if conf.Mongo.Enabled {
		mongo, err = internal.NewMongoClient(conf)
		if err != nil {
			logger.Error("mongo client", err)
			return
		}
		logger.Info("mongo client initialized")
	}

	metrics := internal.NewMetrics()

	payments := internal.NewPayments(conf)
	payments.SetLogger(internal.NewLogger("payments", conf.IsDebug, mongo))
	payments.SetMetrics(metrics)

	server := internal.NewServer(conf)
	server.SetLogger(internal.NewLogger("server", conf.IsDebug, mongo))
	server.SetPaymentsService(payments)
	server.SetMetrics(metrics)

	err = server.Start()
	if err != nil {
		logger.Error("server start", err)
		return
	}

}

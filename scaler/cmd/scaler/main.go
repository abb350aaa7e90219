package main

import (
	"context"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"

	"github.com/tablescaler/tablescaler/api/adminserver"
	"github.com/tablescaler/tablescaler/awsclient"
	"github.com/tablescaler/tablescaler/healthendpoint"
	"github.com/tablescaler/tablescaler/notification"
	"github.com/tablescaler/tablescaler/registry"
	"github.com/tablescaler/tablescaler/scaler"
	"github.com/tablescaler/tablescaler/scaler/config"
	"github.com/tablescaler/tablescaler/startup"
)

const (
	metricsNamespace = "tablescaler"
	metricsSubsystem = "scaler"
)

func main() {
	conf, logger := startup.Bootstrap("tablescaler", config.LoadConfigFile)

	eClock := clock.NewClock()

	awsClients, err := awsclient.NewClientFactory(context.Background(), conf.AWS)
	startup.ExitOnError(logger, err, "failed-to-load-aws-config", lager.Data{"region": conf.AWS.Region})
	logger.Info("aws-config-loaded", lager.Data{"region": awsClients.Region(), "endpoint": conf.AWS.Endpoint})

	indexRegistry := registry.NewRegistry(logger)
	for _, index := range conf.Indexes {
		err = indexRegistry.AddOrReplace(index)
		startup.ExitOnError(logger, err, "failed-to-register-index", lager.Data{"index": index.Index.String()})
	}

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector(metricsNamespace, metricsSubsystem)
	scalerStatusCollector := healthendpoint.NewScalerStatusCollector(metricsNamespace, metricsSubsystem)
	promRegistry := prometheus.NewRegistry()
	err = healthendpoint.RegisterCollectors(promRegistry, logger.Session("scaler-prometheus"),
		append(healthendpoint.DefaultCollectors(),
			httpStatusCollector,
			scalerStatusCollector,
			healthendpoint.NewRegisteredIndexesCollector(metricsNamespace, metricsSubsystem, indexRegistry.Len),
		)...)
	startup.ExitOnError(logger, err, "failed-to-register-collectors")

	notifier := notification.NewNotifier(
		logger,
		awsclient.NewSNSPublisher(awsClients.SNS()),
		conf.Scaling.NotificationARN,
		notification.NewBreaker(conf.Scaling.NotificationBreaker, nil),
		scalerStatusCollector,
	)

	tables := awsclient.NewDynamoTables(logger, awsClients.DynamoDB())
	metrics := awsclient.NewCloudWatchMetrics(awsClients.CloudWatch(), eClock, conf.Scaling.MetricsLookbackBuffer, conf.Scaling.MetricsPeriod)
	indexScaler := scaler.NewScaler(logger, eClock, metrics, tables, tables, notifier, scalerStatusCollector)
	scheduler := scaler.NewScheduler(logger, eClock, conf.Scaling.CheckInterval, indexRegistry, indexScaler, notifier, scalerStatusCollector)

	adminServer := adminserver.NewAdminServer(logger, adminserver.Config{
		ServerConfig: conf.Server.ServerConfig,
		BasicAuth:    conf.Server.BasicAuth,
		RateLimit:    conf.Server.RateLimit,
	}, indexRegistry, httpStatusCollector, eClock)

	checkers := []healthendpoint.Checker{healthendpoint.SchedulerChecker("scheduler", scheduler.IsRunning)}

	startup.StartService(logger,
		startup.Server("health_server", func() (ifrit.Runner, error) {
			return healthendpoint.NewHealthServer(conf.Health, checkers, logger, promRegistry)
		}),
		startup.Server("admin_server", adminServer.GetServer),
		startup.Runner("scheduler", scheduler),
	)
}

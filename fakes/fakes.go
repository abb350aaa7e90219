package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_sink.go ../notification Sink
//counterfeiter:generate -o ./fake_metrics_source.go ../scaler MetricsSource
//counterfeiter:generate -o ./fake_table_description_source.go ../scaler TableDescriptionSource
//counterfeiter:generate -o ./fake_table_updater.go ../scaler TableUpdater
//counterfeiter:generate -o ./fake_dynamodb_api.go ../awsclient DynamoDBAPI
//counterfeiter:generate -o ./fake_cloudwatch_api.go ../awsclient CloudWatchAPI
//counterfeiter:generate -o ./fake_sns_api.go ../awsclient SNSAPI
//counterfeiter:generate -o ./fake_httpstatus_collector.go ../healthendpoint HTTPStatusCollector
//counterfeiter:generate -o ./fake_scaler_status_collector.go ../healthendpoint ScalerStatusCollector
//counterfeiter:generate -o ./fake_limiter.go ../ratelimiter Limiter

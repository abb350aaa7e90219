package helpers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"

	"github.com/tablescaler/tablescaler/models"
)

const DefaultServerHost = "0.0.0.0"

type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

func (c ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", models.ErrConfiguration, c.Port)
	}
	return nil
}

func (c ServerConfig) Addr() string {
	host := c.Host
	if host == "" {
		host = DefaultServerHost
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Port))
}

func NewHTTPServer(logger lager.Logger, conf ServerConfig, handler http.Handler) ifrit.Runner {
	logger.Info("new-http-server", lager.Data{"addr": conf.Addr()})
	return http_server.New(conf.Addr(), handler)
}

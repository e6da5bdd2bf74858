package ioc

import (
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p/metrics"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p/tracing"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
)

type p2pConfig struct {
	APIKey      string    `yaml:"apiKey"`
	APISecret   string    `yaml:"apiSecret"`
	ProxyToken  string    `yaml:"proxyToken"`
	ActiveRows  int       `yaml:"activeRows"`
	HistoryRows int       `yaml:"historyRows"`
	Paths       p2p.Paths `yaml:"paths"`
}

func loadP2PConfig() p2pConfig {
	var cfg p2pConfig
	if err := econf.UnmarshalKey("p2p", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// InitP2PClient 凭证缺失时直接 panic，不会发出任何请求
func InitP2PClient() p2p.Client {
	cfg := loadP2PConfig()
	c, err := p2p.NewHTTPClient(ehttp.Load("p2p").Build(), p2p.Credentials{
		APIKey:     cfg.APIKey,
		APISecret:  cfg.APISecret,
		ProxyToken: cfg.ProxyToken,
	}, cfg.Paths)
	if err != nil {
		panic(err)
	}
	return tracing.NewClient(metrics.NewClient(c, nil))
}

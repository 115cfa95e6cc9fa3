package config

import (
	"os"
	"sync"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
)

var (
	config *Config
	once   sync.Once
)

type Mongo struct {
	URL string
	DB  string
}

// Model 对话补全模型配置, 兼容OpenAI协议
type Model struct {
	APIKey    string `json:",optional"`
	BaseURL   string `json:",optional"`
	Model     string
	MaxTokens int   `json:",default=1000"`
	Timeout   int64 `json:",default=60"`
}

type Config struct {
	service.ServiceConf
	ListenOn string
	Model    Model
	Cache    cache.CacheConf `json:",optional"`
	Mongo    Mongo
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}
	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return config, nil
}

func GetConfig() *Config {
	return config
}

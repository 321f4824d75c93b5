package config

import (
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
)

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64 `json:",optional"`
}

type Mongo struct {
	URL string
	DB  string
}

// Chatbot 对话引擎配置, 引擎以 {BaseURL}/{session_id} 形式访问
type Chatbot struct {
	BaseURL string
}

// TTSTail 异步语音合成的工作池配置
type TTSTail struct {
	Workers   int `json:",default=4"`
	QueueSize int `json:",default=256"`
}

type Config struct {
	service.ServiceConf
	ListenOn string
	Auth     Auth
	Mongo    Mongo
	Chatbot  Chatbot
	TTSTail  TTSTail
	Cache    cache.CacheConf `json:",optional"`
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

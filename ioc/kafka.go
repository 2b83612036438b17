package ioc

import (
	"fmt"
	"github.com/IBM/sarama"
	"github.com/cnmd-sb-git/paicoding/internal/events"
	"github.com/cnmd-sb-git/paicoding/internal/events/article"
	"github.com/spf13/viper"
)

func InitKafka() sarama.Client {
	type Config struct {
		Addrs []string `yaml:"addrs"`
	}
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	var c Config
	err := viper.UnmarshalKey("kafka", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}
	client, err := sarama.NewClient(c.Addrs, saramaCfg)
	if err != nil {
		panic(err)
	}
	return client
}

func NewSyncProducer(client sarama.Client) sarama.SyncProducer {
	res, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		panic(err)
	}
	return res
}

// NewConsumers 所有的消费者都在这里注册，App 启动时统一 Start
func NewConsumers(c *article.ReadEventBatchConsumer) []events.Consumer {
	return []events.Consumer{c}
}

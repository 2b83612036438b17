package article

import (
	"context"
	"encoding/json"
	"github.com/IBM/sarama"
)

// topicReadEvent 文章阅读事件的 topic，
// 详情页的完整视图每被访问一次就发一条
const topicReadEvent = "article_read_event"

type Producer interface {
	ProduceReadEvent(ctx context.Context, evt ReadEvent) error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
}

func NewKafkaProducer(pc sarama.SyncProducer) Producer {
	return &KafkaProducer{
		producer: pc,
	}
}

func (k *KafkaProducer) ProduceReadEvent(ctx context.Context, evt ReadEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topicReadEvent,
		Value: sarama.ByteEncoder(data),
	})
	return err
}

// ReadEvent 某个用户读了某篇文章，未登录时 Uid 是 0
type ReadEvent struct {
	Uid int64
	Aid int64
}

package article

import (
	"context"
	"github.com/IBM/sarama"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/cnmd-sb-git/paicoding/pkg/saramax"
	"github.com/ecodeclub/ekit/slice"
	"time"
)

// ReadEventBatchConsumer 批量消费阅读事件，
// 把一批事件折算成计数表上的一次批量自增
type ReadEventBatchConsumer struct {
	client sarama.Client
	repo   repository.ArticleCountRepository
	l      logger.Logger
}

func NewReadEventBatchConsumer(client sarama.Client, l logger.Logger,
	repo repository.ArticleCountRepository) *ReadEventBatchConsumer {
	return &ReadEventBatchConsumer{
		client: client,
		l:      l,
		repo:   repo,
	}
}

func (r *ReadEventBatchConsumer) Start() error {
	cg, err := sarama.NewConsumerGroupFromClient("article_count", r.client)
	if err != nil {
		return err
	}
	go func() {
		err := cg.Consume(context.Background(), []string{topicReadEvent},
			saramax.NewBatchHandler[ReadEvent](r.l, r.Consume))
		if err != nil {
			r.l.Error("退出了消费循环异常", logger.Error(err))
		}
	}()
	return err
}

func (r *ReadEventBatchConsumer) Consume(msgs []*sarama.ConsumerMessage, evts []ReadEvent) error {
	if len(msgs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ids := slice.Map[ReadEvent, int64](evts, func(idx int, src ReadEvent) int64 {
		return src.Aid
	})
	return r.repo.BatchIncrReadCnt(ctx, ids)
}

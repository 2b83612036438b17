package service

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/ecodeclub/ekit/queue"
	"github.com/ecodeclub/ekit/slice"
	"math"
	"time"
)

type RankingService interface {
	// RankTopN 计算热榜并写进缓存
	RankTopN(ctx context.Context) error
	GetTopN(ctx context.Context) ([]domain.SimpleArticle, error)
}

type BatchRankingService struct {
	artRepo   repository.ArticleRepository
	countSvc  CountService
	repo      repository.RankingRepository
	BatchSize int
	N         int
	scoreFunc func(readCnt int64, utime time.Time) float64
}

func NewBatchRankingService(artRepo repository.ArticleRepository,
	countSvc CountService, repo repository.RankingRepository) RankingService {
	res := &BatchRankingService{
		artRepo:   artRepo,
		countSvc:  countSvc,
		repo:      repo,
		BatchSize: 100,
		N:         100,
	}
	res.scoreFunc = res.score

	return res
}

func (b *BatchRankingService) GetTopN(ctx context.Context) ([]domain.SimpleArticle, error) {
	return b.repo.GetTopN(ctx)
}

func (b *BatchRankingService) RankTopN(ctx context.Context) error {
	arts, err := b.rankTopN(ctx)
	if err != nil {
		return err
	}
	return b.repo.ReplaceTopN(ctx, arts)
}

func (b *BatchRankingService) rankTopN(ctx context.Context) ([]domain.SimpleArticle, error) {
	now := time.Now()
	// 只算七天内更新过的文章，再旧的进不了热榜。
	// 一个批次里 utime 最小的已经超过七天，就中断扫描
	ddl := now.Add(-time.Hour * 24 * 7)
	offset := 0

	type Score struct {
		art   domain.Article
		cnt   int64
		score float64
	}
	// 优先级队列维持住当前的 topN
	topN := queue.NewPriorityQueue[Score](b.N,
		func(src Score, dst Score) int {
			if src.score > dst.score {
				return 1
			} else if src.score == dst.score {
				return 0
			} else {
				return -1
			}
		})

	for {
		arts, err := b.artRepo.List(ctx, offset, b.BatchSize)
		if err != nil {
			return nil, err
		}
		artIds := slice.Map[domain.Article, int64](arts, func(idx int, src domain.Article) int64 {
			return src.Id
		})
		cntMap, err := b.countSvc.ArticleCounts(ctx, artIds)
		if err != nil {
			return nil, err
		}

		for _, art := range arts {
			cnt := cntMap[art.Id]
			score := b.scoreFunc(cnt.ReadCnt, art.Utime)

			err = topN.Enqueue(Score{
				art:   art,
				cnt:   cnt.ReadCnt,
				score: score,
			})
			if err == queue.ErrOutOfCapacity {
				val, _ := topN.Dequeue()
				if val.score < score {
					_ = topN.Enqueue(Score{
						art:   art,
						cnt:   cnt.ReadCnt,
						score: score,
					})
				} else {
					_ = topN.Enqueue(val)
				}
			}
		}
		if len(arts) < b.BatchSize ||
			arts[len(arts)-1].Utime.Before(ddl) {
			break
		}
		offset = offset + len(arts)
	}

	res := make([]domain.SimpleArticle, 0, b.N)
	for {
		val, err := topN.Dequeue()
		if err != nil {
			// 取完了，不够 N 也无所谓
			break
		}
		res = append(res, domain.SimpleArticle{
			Id:      val.art.Id,
			Title:   val.art.Title,
			ReadCnt: val.cnt,
			Ctime:   val.art.Ctime,
		})
	}
	// 队列是小顶堆，出队是从低分到高分，翻转成榜单顺序
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res, nil
}

func (b *BatchRankingService) score(readCnt int64, utime time.Time) float64 {
	// 阅读数加时间衰减，越新的文章衰减越少
	const factor = 1.5
	return float64(readCnt) /
		math.Pow(time.Since(utime).Hours()+2, factor)
}

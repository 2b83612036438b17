package ioc

import (
	"github.com/cnmd-sb-git/paicoding/internal/job"
	"github.com/cnmd-sb-git/paicoding/internal/service"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"time"
)

func InitRankingJob(svc service.RankingService) *job.RankingJob {
	return job.NewRankingJob(svc, time.Second*30)
}

func InitJobs(l logger.Logger, rankingJob *job.RankingJob) *cron.Cron {
	bd := job.NewCronJobBuilder(l, prometheus.SummaryOpts{
		Namespace: "forum_server",
		Subsystem: "forum",
		Name:      "cron_job",
		Help:      "榜单定时任务",
	})
	expr := cron.New(cron.WithSeconds())
	_, err := expr.AddJob("@every 1m", bd.Build(rankingJob))
	if err != nil {
		panic(err)
	}
	return expr
}

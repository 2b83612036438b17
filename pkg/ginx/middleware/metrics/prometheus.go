package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"strconv"
	"time"
)

type PrometheusBuilder struct {
	Namespace string
	Subsystem string
	// Name 指标名，必填
	Name string
	Help string
	// InstanceID 实例标识，可以用本地 IP，或者在启动时配置一个
	InstanceID string
}

// BuildResponseTime 统计响应时间的中间件，按百分位数聚合
func (p *PrometheusBuilder) BuildResponseTime() gin.HandlerFunc {
	labels := []string{"method", "pattern", "status"}
	summaryVec := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: p.Namespace,
		Subsystem: p.Subsystem,
		Name:      p.Name + "_resp_time",
		Help:      p.Help,
		ConstLabels: map[string]string{
			"instance_id": p.InstanceID,
		},
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.75:  0.01,
			0.90:  0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, labels)
	prometheus.MustRegister(summaryVec)

	return func(ctx *gin.Context) {
		method := ctx.Request.Method
		start := time.Now()
		defer func() {
			summaryVec.WithLabelValues(method, ctx.FullPath(),
				strconv.Itoa(ctx.Writer.Status())).
				Observe(float64(time.Since(start).Milliseconds()))
		}()
		ctx.Next()
	}
}

// BuildActiveRequest 统计当前在处理中的请求数
func (p *PrometheusBuilder) BuildActiveRequest() gin.HandlerFunc {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: p.Namespace,
		Subsystem: p.Subsystem,
		Name:      p.Name + "_active_req",
		Help:      p.Help,
		ConstLabels: map[string]string{
			"instance_id": p.InstanceID,
		},
	})
	prometheus.MustRegister(gauge)

	return func(ctx *gin.Context) {
		gauge.Inc()
		defer gauge.Dec()
		ctx.Next()
	}
}

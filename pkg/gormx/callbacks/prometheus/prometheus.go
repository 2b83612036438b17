package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"time"
)

// Callbacks 在 GORM 的钩子上挂响应时间统计
type Callbacks struct {
	Namespace  string
	Subsystem  string
	Name       string
	InstanceID string
	Help       string
	vector     *prometheus.SummaryVec
}

func (c *Callbacks) Register(db *gorm.DB) error {
	vector := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:      c.Name,
			Subsystem: c.Subsystem,
			Namespace: c.Namespace,
			Help:      c.Help,
			ConstLabels: map[string]string{
				"db_name":     db.Name(),
				"instance_id": c.InstanceID,
			},
			Objectives: map[float64]float64{
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"type", "table"},
	)
	prometheus.MustRegister(vector)
	c.vector = vector

	err := db.Callback().Query().Before("*").Register("prometheus_query_before", c.before("query"))
	if err != nil {
		return err
	}
	err = db.Callback().Query().After("*").Register("prometheus_query_after", c.after("query"))
	if err != nil {
		return err
	}
	err = db.Callback().Raw().Before("*").Register("prometheus_raw_before", c.before("raw"))
	if err != nil {
		return err
	}
	err = db.Callback().Raw().After("*").Register("prometheus_raw_after", c.after("raw"))
	if err != nil {
		return err
	}
	err = db.Callback().Create().Before("*").Register("prometheus_create_before", c.before("create"))
	if err != nil {
		return err
	}
	err = db.Callback().Create().After("*").Register("prometheus_create_after", c.after("create"))
	if err != nil {
		return err
	}
	err = db.Callback().Update().Before("*").Register("prometheus_update_before", c.before("update"))
	if err != nil {
		return err
	}
	err = db.Callback().Update().After("*").Register("prometheus_update_after", c.after("update"))
	if err != nil {
		return err
	}
	err = db.Callback().Delete().Before("*").Register("prometheus_delete_before", c.before("delete"))
	if err != nil {
		return err
	}
	return db.Callback().Delete().After("*").Register("prometheus_delete_after", c.after("delete"))
}

func (c *Callbacks) before(typ string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		db.Set("start_time", time.Now())
	}
}

func (c *Callbacks) after(typ string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, _ := db.Get("start_time")
		start, ok := val.(time.Time)
		if !ok {
			return
		}
		c.vector.WithLabelValues(typ, db.Statement.Table).
			Observe(float64(time.Since(start).Milliseconds()))
	}
}

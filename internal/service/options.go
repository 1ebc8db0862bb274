package service

import (
	"time"

	"github.com/lifelog/internal/log"
)

// base 汇总各领域服务共享的依赖
type base struct {
	buckets *BucketService
	logger  *log.Logger
	now     func() time.Time
}

// Option 调整服务的可选依赖
type Option func(*base)

// WithClock 替换服务使用的时钟，主要面向测试场景
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLogger 指定服务的日志记录器
func WithLogger(logger *log.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func newBase(buckets *BucketService, component string, opts []Option) base {
	b := base{
		buckets: buckets,
		logger:  log.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	b.logger = b.logger.WithComponent(component)
	return b
}

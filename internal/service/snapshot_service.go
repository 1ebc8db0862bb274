package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"golang.org/x/sync/errgroup"
)

// SnapshotService 一次读取全部存储桶并组装只读快照
type SnapshotService struct {
	base
}

// NewSnapshotService 构造 SnapshotService
func NewSnapshotService(buckets *BucketService, opts ...Option) *SnapshotService {
	return &SnapshotService{base: newBase(buckets, log.ComponentStorage, opts)}
}

// Load 读取全部存储桶并并发解码，损坏的桶以默认值代替
func (s *SnapshotService) Load(ctx context.Context) (record.Snapshot, error) {
	raw, err := s.buckets.GetMany(ctx, record.Buckets())
	if err != nil {
		return record.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	snapshot := record.EmptySnapshot()
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	decodeInto := func(fn func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}

	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, habitsCodec, raw[habitsCodec.bucket])
		mu.Lock()
		snapshot.Habits = store
		mu.Unlock()
	})
	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, completionsCodec, raw[completionsCodec.bucket])
		mu.Lock()
		snapshot.Completions = store
		mu.Unlock()
	})
	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, budgetCodec, raw[budgetCodec.bucket])
		mu.Lock()
		snapshot.Budget = store
		mu.Unlock()
	})
	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, journalCodec, raw[journalCodec.bucket])
		mu.Lock()
		snapshot.Journal = store
		mu.Unlock()
	})
	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, routinesCodec, raw[routinesCodec.bucket])
		mu.Lock()
		snapshot.Routines = store
		mu.Unlock()
	})
	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, routineCompletionsCodec, raw[routineCompletionsCodec.bucket])
		mu.Lock()
		snapshot.RoutineCompletions = store
		mu.Unlock()
	})
	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, skincareCodec, raw[skincareCodec.bucket])
		mu.Lock()
		snapshot.Skincare = store
		mu.Unlock()
	})
	decodeInto(func() {
		store := decodeLogged(gctx, s.logger, intentionsCodec, raw[intentionsCodec.bucket])
		mu.Lock()
		snapshot.Intentions = store
		mu.Unlock()
	})
	decodeInto(func() {
		profile := decodeLogged(gctx, s.logger, profileCodec, raw[profileCodec.bucket])
		mu.Lock()
		snapshot.Profile = profile
		mu.Unlock()
	})

	if err := g.Wait(); err != nil {
		return record.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return snapshot, nil
}

// Raw 返回全部存储桶的原始内容，缺失的桶不出现在结果中
func (s *SnapshotService) Raw(ctx context.Context) (map[string]string, error) {
	raw, err := s.buckets.GetMany(ctx, record.Buckets())
	if err != nil {
		return nil, fmt.Errorf("load raw buckets: %w", err)
	}
	return raw, nil
}

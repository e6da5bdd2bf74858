package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	enginemocks "gitee.com/flycash/p2p-autoreply/internal/service/engine/mocks"
	"github.com/meoying/dlock-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeLock struct {
	lockErr  error
	unlocked bool
}

func (l *fakeLock) Lock(context.Context) error {
	return l.lockErr
}

func (l *fakeLock) Unlock(context.Context) error {
	l.unlocked = true
	return nil
}

func (l *fakeLock) Refresh(context.Context) error {
	return nil
}

type fakeLockClient struct {
	dlock.Client
	lock   *fakeLock
	err    error
	gotKey string
	gotExp time.Duration
}

func (c *fakeLockClient) NewLock(_ context.Context, key string, expiration time.Duration) (dlock.Lock, error) {
	c.gotKey = key
	c.gotExp = expiration
	if c.err != nil {
		return nil, c.err
	}
	return c.lock, nil
}

func TestJob_Run(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		client       *fakeLockClient
		mock         func(e *enginemocks.MockEngine)
		wantSummary  domain.RunSummary
		errorIs      error
		wantUnlocked bool
	}{
		{
			name:   "拿到锁执行一轮",
			client: &fakeLockClient{lock: &fakeLock{}},
			mock: func(e *enginemocks.MockEngine) {
				e.EXPECT().Run(gomock.Any()).Return(domain.RunSummary{Processed: 2}, nil)
			},
			wantSummary:  domain.RunSummary{Processed: 2},
			wantUnlocked: true,
		},
		{
			name:   "引擎失败也要释放锁",
			client: &fakeLockClient{lock: &fakeLock{}},
			mock: func(e *enginemocks.MockEngine) {
				e.EXPECT().Run(gomock.Any()).Return(domain.RunSummary{}, errs.ErrFetchOrders)
			},
			errorIs:      errs.ErrFetchOrders,
			wantUnlocked: true,
		},
		{
			name:    "锁被别人持有",
			client:  &fakeLockClient{lock: &fakeLock{lockErr: errors.New("locked")}},
			mock:    func(*enginemocks.MockEngine) {},
			errorIs: errs.ErrRunInProgress,
		},
		{
			name:   "初始化锁失败",
			client: &fakeLockClient{err: errors.New("redis down")},
			mock:   func(*enginemocks.MockEngine) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			e := enginemocks.NewMockEngine(ctrl)
			tc.mock(e)

			job := NewJob(e, tc.client, "", 0)
			summary, err := job.Run(context.Background())
			if tc.errorIs != nil {
				assert.ErrorIs(t, err, tc.errorIs)
			}
			if tc.client.err != nil {
				assert.Error(t, err)
			}
			assert.Equal(t, tc.wantSummary, summary)
			assert.Equal(t, DefaultLockKey, tc.client.gotKey)
			assert.Equal(t, time.Minute, tc.client.gotExp)
			if tc.client.lock != nil {
				assert.Equal(t, tc.wantUnlocked, tc.client.lock.unlocked)
			}
		})
	}
}

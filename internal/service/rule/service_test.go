package rule

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	repomocks "gitee.com/flycash/p2p-autoreply/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_ListActive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(repo *repomocks.MockTriggerRuleRepository)
		wantIDs []int64
		errorIs error
	}{
		{
			name: "过滤未启用和非法规则并按优先级排序",
			mock: func(repo *repomocks.MockTriggerRuleRepository) {
				repo.EXPECT().FindActive(gomock.Any()).Return([]domain.TriggerRule{
					{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true, Priority: 1},
					{ID: 2, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: false, Priority: 9},
					{ID: 3, TriggerEvent: domain.TriggerEventPaymentMarked, IsActive: true, Priority: 5},
					{ID: 4, TriggerEvent: "unknown", IsActive: true, Priority: 7},
					{ID: 5, TriggerEvent: domain.TriggerEventTimerBreach, IsActive: true, Priority: 5},
				}, nil)
			},
			wantIDs: []int64{3, 5, 1},
		},
		{
			name: "没有规则",
			mock: func(repo *repomocks.MockTriggerRuleRepository) {
				repo.EXPECT().FindActive(gomock.Any()).Return(nil, nil)
			},
			wantIDs: []int64{},
		},
		{
			name: "数据库错误",
			mock: func(repo *repomocks.MockTriggerRuleRepository) {
				repo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("db down"))
			},
			errorIs: errs.ErrLoadRules,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockTriggerRuleRepository(ctrl)
			tc.mock(repo)

			rules, err := NewService(repo).ListActive(context.Background())
			if tc.errorIs != nil {
				assert.ErrorIs(t, err, tc.errorIs)
				return
			}
			require.NoError(t, err)
			ids := make([]int64, 0, len(rules))
			for _, r := range rules {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	rules := []domain.TriggerRule{
		{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived},
		{ID: 2, TriggerEvent: domain.TriggerEventOrderReceived, TradeType: "sell"},
		{ID: 3, TriggerEvent: domain.TriggerEventOrderReceived, TradeType: "BUY"},
		{ID: 4, TriggerEvent: domain.TriggerEventPaymentMarked},
		{ID: 5, TriggerEvent: domain.TriggerEventOrderReceived},
	}

	testCases := []struct {
		name      string
		tradeType string
		event     domain.TriggerEvent
		wantIDs   []int64
	}{
		{
			name:      "买卖方向不区分大小写",
			tradeType: "SELL",
			event:     domain.TriggerEventOrderReceived,
			wantIDs:   []int64{1, 2, 5},
		},
		{
			name:      "不同事件",
			tradeType: "BUY",
			event:     domain.TriggerEventPaymentMarked,
			wantIDs:   []int64{4},
		},
		{
			name:      "没有匹配",
			tradeType: "BUY",
			event:     domain.TriggerEventTimerBreach,
			wantIDs:   []int64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			matched := Match(rules, domain.Order{TradeType: tc.tradeType}, tc.event)
			ids := make([]int64, 0, len(matched))
			for _, r := range matched {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

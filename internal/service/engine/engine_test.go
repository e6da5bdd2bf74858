package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p"
	p2pmocks "gitee.com/flycash/p2p-autoreply/internal/pkg/p2p/mocks"
	repomocks "gitee.com/flycash/p2p-autoreply/internal/repository/mocks"
	"gitee.com/flycash/p2p-autoreply/internal/service/dispatcher"
	dispatchermocks "gitee.com/flycash/p2p-autoreply/internal/service/dispatcher/mocks"
	"gitee.com/flycash/p2p-autoreply/internal/service/event"
	"gitee.com/flycash/p2p-autoreply/internal/service/gate"
	ordermocks "gitee.com/flycash/p2p-autoreply/internal/service/order/mocks"
	rulemocks "gitee.com/flycash/p2p-autoreply/internal/service/rule/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

type seqID struct {
	mu   sync.Mutex
	next uint64
}

func (s *seqID) NextID() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next, nil
}

// quotaLimiter 放行 quota 次之后开始限流
type quotaLimiter struct {
	quota int
}

func (q *quotaLimiter) Limit(context.Context, string) (bool, error) {
	if q.quota <= 0 {
		return true, nil
	}
	q.quota--
	return false, nil
}

type EngineTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	rules      *rulemocks.MockService
	fetcher    *ordermocks.MockFetcher
	markers    *repomocks.MockProcessedMarkerRepository
	dispatcher *dispatchermocks.MockDispatcher
	limiter    *quotaLimiter
	now        time.Time
	engine     Engine
}

func TestEngine(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rules = rulemocks.NewMockService(s.ctrl)
	s.fetcher = ordermocks.NewMockFetcher(s.ctrl)
	s.markers = repomocks.NewMockProcessedMarkerRepository(s.ctrl)
	s.dispatcher = dispatchermocks.NewMockDispatcher(s.ctrl)
	s.limiter = &quotaLimiter{quota: 100}
	s.now = time.UnixMilli(1700000000000)

	e := NewEngine(s.rules, s.fetcher, event.NewDetector(0),
		gate.NewDedupGate(s.markers), gate.NewRateGate(s.limiter, "autoreply:send"),
		s.dispatcher, &seqID{},
		NewMetrics(prometheus.NewRegistry()))
	e.(*engine).now = func() time.Time { return s.now }
	s.engine = e
}

func (s *EngineTestSuite) order(number, status string, age time.Duration) domain.Order {
	return domain.Order{
		OrderNumber: number,
		TradeType:   "SELL",
		RawStatus:   status,
		Status:      domain.ParseOrderStatus(status),
		CreateTime:  s.now.Add(-age),
	}
}

func (s *EngineTestSuite) TestRulesFailed() {
	s.rules.EXPECT().ListActive(gomock.Any()).Return(nil, errs.ErrLoadRules)

	summary, err := s.engine.Run(context.Background())
	s.ErrorIs(err, errs.ErrLoadRules)
	s.Equal(0, summary.OrdersChecked)
}

func (s *EngineTestSuite) TestNoActiveRules() {
	s.rules.EXPECT().ListActive(gomock.Any()).Return([]domain.TriggerRule{}, nil)

	summary, err := s.engine.Run(context.Background())
	s.NoError(err)
	s.Equal(0, summary.RulesActive)
	s.Equal(0, summary.OrdersChecked)
	s.NotZero(summary.RunID)
}

func (s *EngineTestSuite) TestFetchFailed() {
	s.rules.EXPECT().ListActive(gomock.Any()).Return([]domain.TriggerRule{
		{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true},
	}, nil)
	s.fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, errs.ErrFetchOrders)

	summary, err := s.engine.Run(context.Background())
	s.ErrorIs(err, errs.ErrFetchOrders)
	s.Equal(1, summary.RulesActive)
	s.Equal(0, summary.Processed)
}

func (s *EngineTestSuite) TestPaymentMarkedScenario() {
	r := domain.TriggerRule{
		ID:              1,
		TriggerEvent:    domain.TriggerEventPaymentMarked,
		MessageTemplate: "received {{orderNumber}}",
		IsActive:        true,
	}
	o := s.order("A1", "PAID", time.Minute)
	s.rules.EXPECT().ListActive(gomock.Any()).Return([]domain.TriggerRule{r}, nil)
	s.fetcher.EXPECT().Fetch(gomock.Any()).Return([]domain.Order{o}, nil)
	key := domain.ProcessedKey{OrderNumber: "A1", TriggerEvent: domain.TriggerEventPaymentMarked, RuleID: 1}
	s.markers.EXPECT().Exists(gomock.Any(), key).Return(false, nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), r, o, domain.TriggerEventPaymentMarked).
		Return(domain.ExecutionLog{Status: domain.ExecutionStatusSent}, nil).Times(1)

	summary, err := s.engine.Run(context.Background())
	s.NoError(err)
	s.Equal(domain.RunSummary{
		RunID:         summary.RunID,
		Processed:     1,
		OrdersChecked: 1,
		RulesActive:   1,
	}, summary)
}

func (s *EngineTestSuite) TestMultiEventIndependence() {
	received := domain.TriggerRule{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true}
	breach := domain.TriggerRule{ID: 2, TriggerEvent: domain.TriggerEventTimerBreach, IsActive: true, TradeType: "buy"}
	breachSell := domain.TriggerRule{ID: 3, TriggerEvent: domain.TriggerEventTimerBreach, IsActive: true}
	o := s.order("A2", "UNPAID", 20*time.Minute)

	s.rules.EXPECT().ListActive(gomock.Any()).Return([]domain.TriggerRule{received, breach, breachSell}, nil)
	s.fetcher.EXPECT().Fetch(gomock.Any()).Return([]domain.Order{o}, nil)
	s.markers.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	gomock.InOrder(
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), received, o, domain.TriggerEventOrderReceived).
			Return(domain.ExecutionLog{Status: domain.ExecutionStatusSent}, nil),
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), breachSell, o, domain.TriggerEventTimerBreach).
			Return(domain.ExecutionLog{Status: domain.ExecutionStatusSent}, nil),
	)

	summary, err := s.engine.Run(context.Background())
	s.NoError(err)
	s.Equal(2, summary.Processed)
}

func (s *EngineTestSuite) TestSkipsAndLocalErrors() {
	delayed := domain.TriggerRule{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true, DelaySeconds: 300}
	dup := domain.TriggerRule{ID: 2, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true}
	failing := domain.TriggerRule{ID: 3, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true}
	storeErr := domain.TriggerRule{ID: 4, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true}
	checkErr := domain.TriggerRule{ID: 5, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true}
	o := s.order("A3", "1", time.Minute)

	s.rules.EXPECT().ListActive(gomock.Any()).
		Return([]domain.TriggerRule{delayed, dup, failing, storeErr, checkErr}, nil)
	s.fetcher.EXPECT().Fetch(gomock.Any()).Return([]domain.Order{o}, nil)
	keyOf := func(id int64) domain.ProcessedKey {
		return domain.ProcessedKey{OrderNumber: "A3", TriggerEvent: domain.TriggerEventOrderReceived, RuleID: id}
	}
	s.markers.EXPECT().Exists(gomock.Any(), keyOf(2)).Return(true, nil)
	s.markers.EXPECT().Exists(gomock.Any(), keyOf(3)).Return(false, nil)
	s.markers.EXPECT().Exists(gomock.Any(), keyOf(4)).Return(false, nil)
	s.markers.EXPECT().Exists(gomock.Any(), keyOf(5)).Return(false, errors.New("db down"))
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), failing, o, gomock.Any()).
		Return(domain.ExecutionLog{Status: domain.ExecutionStatusFailed}, nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), storeErr, o, gomock.Any()).
		Return(domain.ExecutionLog{Status: domain.ExecutionStatusSent}, errs.ErrSaveExecutionLog)

	summary, err := s.engine.Run(context.Background())
	s.NoError(err)
	s.Equal(1, summary.SkippedDelay)
	s.Equal(1, summary.SkippedDuplicate)
	s.Equal(1, summary.Processed)
	// 发送失败、落库失败、查询标记失败各算一次
	s.Equal(3, summary.Errors)
}

func (s *EngineTestSuite) TestRateLimited() {
	first := domain.TriggerRule{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true}
	second := domain.TriggerRule{ID: 2, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true}
	o := s.order("A5", "1", time.Minute)
	s.limiter.quota = 1

	s.rules.EXPECT().ListActive(gomock.Any()).Return([]domain.TriggerRule{first, second}, nil)
	s.fetcher.EXPECT().Fetch(gomock.Any()).Return([]domain.Order{o}, nil)
	s.markers.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), first, o, domain.TriggerEventOrderReceived).
		Return(domain.ExecutionLog{Status: domain.ExecutionStatusSent}, nil)

	summary, err := s.engine.Run(context.Background())
	s.NoError(err)
	s.Equal(1, summary.Processed)
	s.Equal(1, summary.SkippedRateLimit)
	s.Equal(0, summary.Errors)
}

func (s *EngineTestSuite) TestContextCanceled() {
	s.rules.EXPECT().ListActive(gomock.Any()).Return([]domain.TriggerRule{
		{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true},
	}, nil)
	s.fetcher.EXPECT().Fetch(gomock.Any()).Return([]domain.Order{s.order("A4", "1", time.Minute)}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.engine.Run(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *EngineTestSuite) TestCanceledMidRun() {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	s.engine.(*engine).tracer = tp.Tracer("engine_test")

	s.rules.EXPECT().ListActive(gomock.Any()).Return([]domain.TriggerRule{
		{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, IsActive: true},
	}, nil)
	s.fetcher.EXPECT().Fetch(gomock.Any()).Return([]domain.Order{
		s.order("A5", "1", time.Minute),
		s.order("A6", "1", time.Minute),
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.markers.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	// 第一单发完之后 ctx 被取消，第二单留给下一轮
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.TriggerRule, domain.Order, domain.TriggerEvent) (domain.ExecutionLog, error) {
			cancel()
			return domain.ExecutionLog{Status: domain.ExecutionStatusSent}, nil
		})

	summary, err := s.engine.Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Equal(1, summary.Processed)
	s.Equal(2, summary.OrdersChecked)

	spans := recorder.Ended()
	s.Require().Len(spans, 1)
	s.Equal("Engine.Run", spans[0].Name())
	s.Equal(codes.Error, spans[0].Status().Code)
}

// memMarkers 模拟带唯一索引的已处理标记表
type memMarkers struct {
	mu   sync.Mutex
	keys map[domain.ProcessedKey]struct{}
}

func (m *memMarkers) Exists(_ context.Context, key domain.ProcessedKey) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.keys[key]
	return ok, nil
}

func (m *memMarkers) Create(_ context.Context, key domain.ProcessedKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = struct{}{}
	return nil
}

type memLogs struct {
	mu   sync.Mutex
	logs []domain.ExecutionLog
}

func (m *memLogs) Create(_ context.Context, log domain.ExecutionLog) (domain.ExecutionLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return log, nil
}

func (m *memLogs) FindByOrderNumber(_ context.Context, orderNumber string) ([]domain.ExecutionLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.ExecutionLog
	for _, l := range m.logs {
		if l.OrderNumber == orderNumber {
			res = append(res, l)
		}
	}
	return res, nil
}

func (m *memLogs) count(status domain.ExecutionStatus) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cnt := 0
	for _, l := range m.logs {
		if l.Status == status {
			cnt++
		}
	}
	return cnt
}

func newRealEngine(t *testing.T, client p2p.Client, rules []domain.TriggerRule, orders []domain.Order,
	markers *memMarkers, logs *memLogs, runs int,
) Engine {
	t.Helper()
	ctrl := gomock.NewController(t)
	ruleSvc := rulemocks.NewMockService(ctrl)
	ruleSvc.EXPECT().ListActive(gomock.Any()).Return(rules, nil).Times(runs)
	fetcher := ordermocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any()).Return(orders, nil).Times(runs)
	idGen := &seqID{}
	d := dispatcher.NewDispatcher(client, markers, logs, idGen)
	return NewEngine(ruleSvc, fetcher, event.NewDetector(0), gate.NewDedupGate(markers), nil, d, idGen,
		NewMetrics(prometheus.NewRegistry()))
}

func TestEngine_AtMostOneSuccess(t *testing.T) {
	t.Parallel()
	rules := []domain.TriggerRule{
		{ID: 1, TriggerEvent: domain.TriggerEventPaymentMarked, MessageTemplate: "paid {{orderNumber}}", IsActive: true},
	}
	orders := []domain.Order{{OrderNumber: "B1", Status: domain.OrderStatusPaid, CreateTime: time.Now().Add(-time.Minute)}}
	markers := &memMarkers{keys: map[domain.ProcessedKey]struct{}{}}
	logs := &memLogs{}

	ctrl := gomock.NewController(t)
	client := p2pmocks.NewMockClient(ctrl)
	client.EXPECT().SendChatMessage(gomock.Any(), "B1", "paid B1").
		Return(p2p.SendChatResp{HTTPStatus: 200, Accepted: true}, nil).Times(1)

	e := newRealEngine(t, client, rules, orders, markers, logs, 3)
	for i := 0; i < 3; i++ {
		_, err := e.Run(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, logs.count(domain.ExecutionStatusSent))
	assert.Len(t, markers.keys, 1)
}

func TestEngine_FailedSendRetried(t *testing.T) {
	t.Parallel()
	rules := []domain.TriggerRule{
		{ID: 1, TriggerEvent: domain.TriggerEventOrderReceived, MessageTemplate: "hi", IsActive: true},
	}
	orders := []domain.Order{{OrderNumber: "B2", Status: domain.OrderStatusUnpaid, CreateTime: time.Now()}}
	markers := &memMarkers{keys: map[domain.ProcessedKey]struct{}{}}
	logs := &memLogs{}

	ctrl := gomock.NewController(t)
	client := p2pmocks.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().SendChatMessage(gomock.Any(), "B2", "hi").
			Return(p2p.SendChatResp{}, errors.New("connection reset")),
		client.EXPECT().SendChatMessage(gomock.Any(), "B2", "hi").
			Return(p2p.SendChatResp{HTTPStatus: 200, Accepted: true}, nil),
	)

	e := newRealEngine(t, client, rules, orders, markers, logs, 2)
	first, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Errors)
	assert.Empty(t, markers.keys)

	second, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.Processed)
	assert.Equal(t, 1, logs.count(domain.ExecutionStatusFailed))
	assert.Equal(t, 1, logs.count(domain.ExecutionStatusSent))
}

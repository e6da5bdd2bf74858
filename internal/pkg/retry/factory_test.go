package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
		first   time.Duration
	}{
		{
			name:  "默认配置",
			cfg:   DefaultConfig(),
			first: time.Second,
		},
		{
			name: "固定间隔",
			cfg: Config{
				Type:          TypeFixed,
				FixedInterval: &FixedIntervalConfig{Interval: 100 * time.Millisecond, MaxRetries: 3},
			},
			first: 100 * time.Millisecond,
		},
		{
			name:    "缺少配置",
			cfg:     Config{Type: TypeFixed},
			wantErr: true,
		},
		{
			name:    "未知类型",
			cfg:     Config{Type: "linear"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewRetry(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			next, ok := s.Next()
			assert.True(t, ok)
			assert.Equal(t, tc.first, next)
		})
	}
}

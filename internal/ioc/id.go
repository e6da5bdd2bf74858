package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

// InitIDGenerator 没有配置 machineId 时使用 sonyflake 默认的内网 IP 推导
func InitIDGenerator() *sonyflake.Sonyflake {
	settings := sonyflake.Settings{
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if econf.Get("id.machineId") != nil {
		machineID := uint16(econf.GetInt("id.machineId"))
		settings.MachineID = func() (uint16, error) {
			return machineID, nil
		}
	}
	sf, err := sonyflake.New(settings)
	if err != nil {
		panic(err)
	}
	return sf
}

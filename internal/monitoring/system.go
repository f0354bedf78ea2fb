package monitoring

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemSnapshot is a one-shot view of the host the service runs on. There
// is no background sampler; the snapshot is taken on request.
type SystemSnapshot struct {
	CPUPercent     float64 `json:"cpuPercent"`
	MemUsedPercent float64 `json:"memUsedPercent"`
	UptimeSeconds  uint64  `json:"uptimeSeconds"`
}

// Snapshot collects current CPU, memory, and uptime figures.
func Snapshot() (SystemSnapshot, error) {
	var snap SystemSnapshot

	cpuPercents, err := cpu.Percent(0, false)
	if err != nil {
		return snap, err
	}
	if len(cpuPercents) > 0 {
		snap.CPUPercent = cpuPercents[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return snap, err
	}
	snap.MemUsedPercent = vm.UsedPercent

	uptime, err := host.Uptime()
	if err != nil {
		return snap, err
	}
	snap.UptimeSeconds = uptime

	return snap, nil
}

package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats is a snapshot of this process's resource usage.
type ProcessStats struct {
	RSS        uint64
	CPUPercent float64
	Goroutines int
	NumCPU     int
}

// CurrentStats samples the running process via gopsutil.
func CurrentStats() (ProcessStats, error) {
	st := ProcessStats{Goroutines: runtime.NumGoroutine(), NumCPU: runtime.NumCPU()}

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return st, fmt.Errorf("process handle: %w", err)
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return st, fmt.Errorf("memory info: %w", err)
	}
	st.RSS = mem.RSS

	cpu, err := p.CPUPercent()
	if err != nil {
		return st, fmt.Errorf("cpu percent: %w", err)
	}
	st.CPUPercent = cpu
	return st, nil
}

// RSSMiB returns the resident set size in MiB.
func (s ProcessStats) RSSMiB() float64 {
	return float64(s.RSS) / (1 << 20)
}

func (s ProcessStats) String() string {
	return fmt.Sprintf("RSS %.1f MiB | CPU %.1f%% | goroutines %d | cores %d",
		s.RSSMiB(), s.CPUPercent, s.Goroutines, s.NumCPU)
}

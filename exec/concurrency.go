package exec

import "github.com/shirou/gopsutil/cpu"

// detectWorkerCount mirrors the original's
// "(int)std::thread::hardware_concurrency() - 1", using gopsutil instead
// of runtime.NumCPU so the count reflects physical/logical cores the host
// OS reports rather than the Go runtime's GOMAXPROCS, which a host may have
// deliberately capped below the machine's real core count.
func detectWorkerCount() int {
	logical, err := cpu.Counts(true)
	if err != nil || logical <= 1 {
		return 1
	}
	return logical - 1
}

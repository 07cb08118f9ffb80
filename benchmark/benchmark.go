// benchmark.go
// A reusable benchmarking module for the DNA analyzer
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Run wraps any function to measure its runtime and memory usage.
// Additionally reports on host and OS information for repeatability.
func Run(label string, f func()) {
	RunTo(os.Stdout, label, f)
}

// RunTo is Run with the report written to w.
func RunTo(w io.Writer, label string, f func()) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123)) // Run begin time
	if info, err := host.Info(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", info.Hostname)
		fmt.Fprintf(w, "[Benchmark] Platform: %s %s (kernel %s)\n", info.Platform, info.PlatformVersion, info.KernelVersion)
	} else if name, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", name)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(w, "[Benchmark] Host Memory: %.2f GB total, %.1f%% in use\n", float64(vm.Total)/1024.0/1024.0/1024.0, vm.UsedPercent)
	}

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart) // Capture memory usage before running the function
	start := time.Now()
	startGoroutines := runtime.NumGoroutine()

	// Run benchmarked function
	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	// Report resource usage
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0) // Total memory ever allocated during run
	fmt.Fprintf(w, "[Benchmark] Heap In Use: %.2f MB\n", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Fprintf(w, "[Benchmark] Total System Memory Allocated: %.2f MB\n", float64(memEnd.Sys)/1024.0/1024.0)

	physical, errP := cpu.Counts(false)
	logical, errL := cpu.Counts(true)
	if errP == nil && errL == nil {
		fmt.Fprintf(w, "[Benchmark] CPU Cores: %d physical, %d logical\n", physical, logical)
	} else {
		fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	}
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", startGoroutines, endGoroutines)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

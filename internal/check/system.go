package check

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Hardware requirements for a usable OpenClaw installation.
const (
	minRAMGB         = 2
	recommendedRAMGB = 4
	minDiskGB        = 20
	minCPUCores      = 2
)

// SystemProbe checks RAM, free disk space, and CPU core count.
type SystemProbe struct{}

func (p *SystemProbe) ID() string          { return "system" }
func (p *SystemProbe) Name() string        { return "System" }
func (p *SystemProbe) Description() string { return "RAM (2GB+), Disk (20GB+), CPU" }

func (p *SystemProbe) Run(ctx context.Context, env *Env) Result {
	var issues, warnings []string

	ramGB := -1.0
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		ramGB = float64(vm.Total) / (1 << 30)
		if ramGB < minRAMGB {
			issues = append(issues, fmt.Sprintf("RAM: %.1fGB (minimum %dGB required)", ramGB, minRAMGB))
		} else if ramGB < recommendedRAMGB {
			warnings = append(warnings, fmt.Sprintf("RAM: %.1fGB (recommended %dGB+)", ramGB, recommendedRAMGB))
		}
	} else {
		warnings = append(warnings, "RAM: could not be determined")
	}

	rootPath := "/"
	if runtime.GOOS == "windows" {
		rootPath = `C:\`
	}
	diskGB := -1.0
	if du, err := disk.UsageWithContext(ctx, rootPath); err == nil {
		diskGB = float64(du.Free) / (1 << 30)
		if diskGB < minDiskGB {
			issues = append(issues, fmt.Sprintf("Disk: %.1fGB free (minimum %dGB required)", diskGB, minDiskGB))
		}
	} else {
		warnings = append(warnings, "Disk: free space could not be determined")
	}

	cores, err := cpu.CountsWithContext(ctx, false)
	if err != nil || cores < 1 {
		cores, _ = cpu.CountsWithContext(ctx, true)
	}
	if cores < 1 {
		cores = 1
	}
	if cores < minCPUCores {
		warnings = append(warnings, fmt.Sprintf("CPU: %d cores (recommended %d+)", cores, minCPUCores))
	}

	if len(issues) > 0 {
		return Result{
			Name:        p.Name(),
			Status:      StatusFail,
			Message:     "System does not meet minimum requirements",
			Details:     strings.Join(append(issues, warnings...), "\n"),
			Suggestions: systemSuggestions(diskGB),
		}
	}

	summary := fmt.Sprintf("%.1fGB RAM, %.0fGB free, %d cores", ramGB, diskGB, cores)
	if len(warnings) > 0 {
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     fmt.Sprintf("System meets minimum requirements (%s)", summary),
			Details:     strings.Join(warnings, "\n"),
			Suggestions: systemSuggestions(diskGB),
		}
	}
	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("System requirements met (%s)", summary),
	}
}

func systemSuggestions(diskGB float64) []string {
	suggestions := []string{
		fmt.Sprintf("Consider upgrading to %dGB+ RAM for better performance", recommendedRAMGB),
	}
	if diskGB >= 0 && diskGB < minDiskGB {
		suggestions = append(suggestions,
			"Free up disk space: remove unused applications, clear temporary files",
		)
	}
	return suggestions
}

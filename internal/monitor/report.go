package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/user/sysmon/internal/format"
	"github.com/user/sysmon/internal/model"
)

const (
	reportWidth = 40
	timeLayout  = "2006-01-02 15:04:05"
	instruction = "Press Ctrl+C to exit"
)

// writeReport prints one fixed-layout cycle. Line order is part of the
// tool's contract: separator, header, CPU, memory percent, used,
// total, dashed separator, instruction.
func writeReport(w io.Writer, s model.Sample) {
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "  SYSTEM MONITORING - %s\n", s.Timestamp.Format(timeLayout))
	fmt.Fprintf(w, "CPU Usage:      %.1f%%\n", s.CPU.Percent)
	fmt.Fprintf(w, "Memory Usage:   %.1f%%\n", s.Memory.Percent)
	fmt.Fprintf(w, "Memory Used:    %s\n", format.Size(s.Memory.UsedBytes))
	fmt.Fprintf(w, "Memory Total:   %s\n", format.Size(s.Memory.TotalBytes))
	fmt.Fprintln(w, strings.Repeat("-", reportWidth))
	fmt.Fprintln(w, instruction)
}

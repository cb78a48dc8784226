package progress

import (
	"fmt"
	"strings"
)

// formatStageCounter returns the [N/Total] stage counter string
func formatStageCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildStageMessage constructs the stage line with an optional item count
func buildStageMessage(stage StageInfo, action string) string {
	counter := formatStageCounter(stage.Number, stage.TotalStages)
	msg := fmt.Sprintf("%s %s %s", counter, action, stage.Name)

	if stage.Total > 0 {
		msg += fmt.Sprintf(" (%d/%d files)", stage.Done, stage.Total)
	}

	return msg
}

// buildOutcomeLine renders the final line of a completed or failed stage.
func buildOutcomeLine(stage StageInfo, symbols ProgressSymbols, color bool, detail string) string {
	mark, word := checkmark(symbols, color), "complete"
	if stage.Status == StageFailed {
		mark, word = failureMark(symbols, color), "failed"
	}

	line := fmt.Sprintf("%s %s %s %s", mark, formatStageCounter(stage.Number, stage.TotalStages), capitalize(stage.Name), word)
	if detail != "" {
		line += ": " + detail
	}
	return line
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m"
	}
	return mark
}

func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Failure
	if supportsColor && symbols.Failure == "✗" {
		mark = "\033[31m" + mark + "\033[0m"
	}
	return mark
}

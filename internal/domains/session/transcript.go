package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

// ExtractTranscript cuts the "get wan" result out of the raw shell output: from the first
// "WAN Connection" line up to the next prompt line, without blank and prompt lines.
func ExtractTranscript(output string) (transcript string, err error) {
	lines := strings.Split(output, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	start := slices.IndexFunc(lines, func(line string) bool {
		return strings.Contains(line, constants.WANMarker)
	})
	if start == -1 {
		return transcript, fmt.Errorf("ExtractTranscript: %w", errs.ErrNoData)
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], constants.PromptMarker) && !strings.Contains(lines[i], constants.WANMarker) {
			end = i
			break
		}
	}

	kept := lo.Filter(lines[start:end], func(line string, _ int) bool {
		return !lo.IsEmpty(strings.TrimSpace(line)) && !strings.Contains(line, constants.PromptMarker)
	})

	return strings.Join(kept, "\n"), nil
}

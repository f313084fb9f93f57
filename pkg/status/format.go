package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent   = 3 // spaces to indent file entries
	counterWidth = 3 // width of the file counter
)

// 🎯 FormatFileResult formats one per-file push result for display
func FormatFileResult(index, total int, path string, err error) string {
	mark := color.GreenString("✓")
	if err != nil {
		mark = color.RedString("✗")
	}

	return fmt.Sprintf("%s[%*d/%d] %s %s",
		strings.Repeat(" ", fileIndent),
		counterWidth,
		index,
		total,
		path,
		mark,
	)
}

// 📊 FormatSummary formats the final push tally
func FormatSummary(succeeded, total int, failed []string) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s Pushed: %d/%d files\n", color.GreenString("✓"), succeeded, total))

	if len(failed) > 0 {
		b.WriteString(fmt.Sprintf("%s Failed: %d files\n", color.RedString("✗"), len(failed)))
		for _, path := range failed {
			b.WriteString(fmt.Sprintf("%s- %s\n", strings.Repeat(" ", fileIndent), path))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

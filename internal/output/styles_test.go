package output

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
		wantDim  bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "skipped returns faint", status: StatusSkipped, wantDim: true},
		{name: "planned returns faint", status: StatusPlanned, wantDim: true},
		{name: "appended returns blue", status: StatusAppended, wantFG: ColorBlue},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatArtifactLine(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status string
	}{
		{"created file", ".editorconfig", StatusCreated},
		{"nested path", ".cargo/config.toml", StatusSkipped},
		{"appended file", ".gitignore", StatusAppended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripAnsi(FormatArtifactLine(tt.path, tt.status))
			assert.True(t, strings.HasPrefix(result, "f:"+tt.path), "should start with f: prefix and path")
			assert.True(t, strings.HasSuffix(result, tt.status), "should end with status")
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		line1 := stripAnsi(FormatArtifactLine("justfile", StatusCreated))
		line2 := stripAnsi(FormatArtifactLine("requirements-dev.txt", StatusCreated))
		assert.Equal(t, strings.Index(line1, StatusCreated), strings.Index(line2, StatusCreated))
	})

	t.Run("long path keeps two spaces", func(t *testing.T) {
		long := strings.Repeat("x", minPathColumnWidth+5)
		assert.Equal(t, "f:"+long+"  "+StatusPlanned, stripAnsi(FormatArtifactLine(long, StatusPlanned)))
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Project configured")
	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Project configured")
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

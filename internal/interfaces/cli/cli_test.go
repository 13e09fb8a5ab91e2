package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/sheets"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEstimate(t *testing.T) {
	out, _, err := execute(t, "", "estimate", "--length", "50", "--width", "20", "--thickness", "3", "--price", "80")
	require.NoError(t, err)

	assert.Equal(t, "Required Asphalt: 18.13 Tons\n"+
		"Estimated Cost: $1,450\n"+
		"Order 19.03 to 19.94 Tons (5% to 10% waste), $1,522.5 to $1,595\n", out)
}

func TestEstimate_Coercion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no price hides cost", []string{"-l", "50", "-w", "20"}, "Required Asphalt: 18.13 Tons\n"},
		{"blank thickness is zero", []string{"-l", "50", "-w", "20", "-t", "", "-p", "80"}, "Required Asphalt: 0 Tons\n"},
		{"junk length is zero", []string{"-l", "abc", "-w", "20", "-p", "80"}, "Required Asphalt: 0 Tons\n"},
		{"negative width is zero", []string{"-l", "50", "-w=-20", "-p", "80"}, "Required Asphalt: 0 Tons\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"estimate"}, tt.args...)...)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, tt.want), out)
			if strings.Contains(tt.want, " 0 Tons") {
				assert.Equal(t, tt.want, out)
			}
		})
	}
}

func TestEstimate_JSON(t *testing.T) {
	out, _, err := execute(t, "", "estimate", "-l", "50", "-w", "20", "-p", "80", "--json")
	require.NoError(t, err)

	var resp dto.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 18.13, resp.Result.Tons)
	assert.Equal(t, 3.0, resp.Input.Thickness)
	require.NotNil(t, resp.Display)
	assert.Equal(t, "$1,450", resp.Display.Cost)
}

func TestEstimate_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.xlsx")

	_, stderr, err := execute(t, "", "estimate", "-l", "50", "-w", "20", "-p", "80", "--xlsx", path, "--project", "Smith")
	require.NoError(t, err)
	assert.Contains(t, stderr, "written to "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	project, err := f.GetCellValue(sheets.QuoteSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Smith", project)
}

func TestEstimate_BadExportPath(t *testing.T) {
	_, _, err := execute(t, "", "estimate", "-l", "50", "--xlsx", "quote.csv")
	assert.Error(t, err)
}

func TestInteractive(t *testing.T) {
	in := strings.Join([]string{
		"length=50",
		"width 20",
		"price = 80",
		"slider 4.5",
		"order",
		"bogus 1",
		"slider wide",
		"reset",
		"quit",
		"length=999",
	}, "\n")

	out, _, err := execute(t, in, "interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "Required Asphalt: 18.13 Tons\n")
	assert.Contains(t, out, "Required Asphalt: 18.13 Tons\nEstimated Cost: $1,450\n")
	assert.Contains(t, out, "Required Asphalt: 27.19 Tons\nEstimated Cost: $2,175\n")
	assert.Contains(t, out, "Order 28.55 to 29.91 Tons")
	assert.Contains(t, out, `unknown field: "bogus"`)
	assert.Contains(t, out, "slider position must be a number between 1 and 10")
	assert.NotContains(t, out, "999")

	// every render after reset shows an empty form
	assert.True(t, strings.HasSuffix(out, "Required Asphalt: 0 Tons\n"), out)
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line, name, value string
	}{
		{"length=50", "length", "50"},
		{" width = 20 ", "width", "20"},
		{"price 80", "price", "80"},
		{"thickness", "thickness", ""},
		{"length=", "length", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		name, value := splitCommand(tt.line)
		assert.Equal(t, tt.name, name, tt.line)
		assert.Equal(t, tt.value, value, tt.line)
	}
}

func TestSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project: Smith lot
price: 80
sections:
  - name: driveway
    length: 50
    width: 20
    thickness: 3
  - name: apron
    length: 10
    width: 10
`), 0o600))

	out, _, err := execute(t, "", "sections", "--file", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Smith lot\n"))
	assert.Contains(t, out, "driveway")
	assert.Contains(t, out, "Required Asphalt: 19.94 Tons\nEstimated Cost: $1,595\n")

	out, _, err = execute(t, "", "sections", "--file", path, "--price", "0", "--json")
	require.NoError(t, err)
	var resp dto.SectionsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 0.0, resp.Total.Cost)
	assert.Equal(t, 19.94, resp.Total.Tons)

	export := filepath.Join(dir, "quote.xlsx")
	_, _, err = execute(t, "", "sections", "--file", path, "--xlsx", export)
	require.NoError(t, err)
	f, err := excelize.OpenFile(export)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{sheets.QuoteSheet, sheets.QuoteSectionsSheet}, f.GetSheetList())
}

func TestSections_RequiresFile(t *testing.T) {
	_, _, err := execute(t, "", "sections")
	assert.EqualError(t, err, "--file is required")
}

func TestCurve(t *testing.T) {
	out, _, err := execute(t, "", "curve", "-l", "50", "-w", "20", "-p", "80")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 20)
	assert.Contains(t, lines[5], "18.13")

	html := filepath.Join(t.TempDir(), "curve.html")
	_, stderr, err := execute(t, "", "curve", "-l", "50", "-w", "20", "--html", html)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Chart written to")

	page, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(page), "echarts")
}

func TestConfigFlagMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "estimate")
	assert.Error(t, err)
}

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	in := operands.InstructionInput{}.WithRa(1).WithRb(2)
	r := report.New([]report.TestCase{
		report.NewTestCase(instructions.Instr_ADD, in, nil, operands.InstructionOutput{}.WithRt(3)),
	})

	t.Run("file in explicit format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.out")
		require.NoError(t, writeReport(path, r, report.Format_YAML))

		file, err := os.Open(path)
		require.NoError(t, err)
		defer file.Close()

		decoded, err := report.Read(file, report.Format_YAML)
		require.NoError(t, err)
		assert.Empty(t, report.Diff(r, decoded))
	})

	t.Run("uncreatable file", func(t *testing.T) {
		err := writeReport(filepath.Join(t.TempDir(), "missing", "run.json"), r, report.Format_JSON)
		assert.Error(t, err)
	})
}

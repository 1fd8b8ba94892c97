package harness

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/models"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func run(t *testing.T, instrs []*instructions.InstructionDescriptor, options ...Option) (*report.Report, error) {
	t.Helper()
	return New(instrs, append([]Option{WithLogger(discardLogger())}, options...)...).Run(context.Background())
}

func TestRun_WithoutNatives(t *testing.T) {
	all := instructions.Instructions.AllInstructions()
	domain := DefaultDomain()

	r, err := run(t, all, WithWorkers(4))
	require.NoError(t, err)

	expected := 0
	for _, instr := range all {
		expected += domain.Combinations(instr.Inputs)
	}

	assert.Len(t, r.TestCases, expected)
	assert.False(t, r.AnyModelMismatch)

	for _, testCase := range r.TestCases {
		assert.Nil(t, testCase.NativeOutputs)
		assert.False(t, testCase.ModelMismatch)
	}

	first := r.TestCases[0]
	assert.Equal(t, instructions.Instr_ADD, first.Instr)
	assert.True(t, first.Inputs.Equal(operands.InstructionInput{}.WithRa(0).WithRb(0)))
	assert.Equal(t, instructions.Instr_MADDLD, r.TestCases[len(r.TestCases)-1].Instr)
}

func TestRun_RegistryOrder(t *testing.T) {
	r, err := run(t, instructions.Instructions.AllInstructions(), WithWorkers(8), WithDomain(DefaultDomain().WithValues([]uint64{0, 1})))
	require.NoError(t, err)

	for i := 1; i < len(r.TestCases); i++ {
		assert.LessOrEqual(t, r.TestCases[i-1].Instr, r.TestCases[i].Instr, "test case %v out of registry order", i)
	}
}

func TestRun_Deterministic(t *testing.T) {
	selected, err := instructions.Instructions.Select("addo.", "divweu", "maddhd", "mulhw.")
	require.NoError(t, err)

	sequential, err := run(t, selected, WithWorkers(1))
	require.NoError(t, err)

	parallel, err := run(t, selected, WithWorkers(16))
	require.NoError(t, err)

	require.Len(t, parallel.TestCases, len(sequential.TestCases))
	for i := range sequential.TestCases {
		assert.Equal(t, sequential.TestCases[i].Instr, parallel.TestCases[i].Instr)
		assert.True(t, sequential.TestCases[i].Inputs.Equal(parallel.TestCases[i].Inputs), "test case %v", i)
		assert.True(t, sequential.TestCases[i].ModelOutputs.Equal(parallel.TestCases[i].ModelOutputs), "test case %v", i)
	}
}

func withNative(t *testing.T, instr instructions.Instr, native models.Func) []*instructions.InstructionDescriptor {
	t.Helper()

	registry := instructions.Instructions.WithNative(map[instructions.Instr]models.Func{instr: native})
	selected, err := registry.Select(instr.String(), "modud")
	require.NoError(t, err)

	return selected
}

func TestRun_NativeMatchingModel(t *testing.T) {
	addo, err := instructions.Instructions.Instruction(instructions.Instr_ADDO)
	require.NoError(t, err)

	r, err := run(t, withNative(t, instructions.Instr_ADDO, addo.Model))
	require.NoError(t, err)

	assert.False(t, r.AnyModelMismatch)

	for _, testCase := range r.TestCases {
		if testCase.Instr == instructions.Instr_ADDO {
			require.NotNil(t, testCase.NativeOutputs)
			assert.True(t, testCase.NativeOutputs.Equal(testCase.ModelOutputs))
		} else {
			assert.Nil(t, testCase.NativeOutputs)
		}
	}
}

func TestRun_NativeMismatch(t *testing.T) {
	// Hardware reporting CR0.SO from the incoming XER instead of the recorded overflow
	add, err := instructions.Instructions.Instruction(instructions.Instr_ADD_)
	require.NoError(t, err)

	native := func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		out, err := add.Model(in)
		if err != nil {
			return out, err
		}

		cr0 := *out.CR[0]
		cr0.SO = in.Overflow.SO
		return out.WithCR0(cr0), nil
	}

	r, err := run(t, withNative(t, instructions.Instr_ADD_, native))
	require.NoError(t, err)

	assert.True(t, r.AnyModelMismatch)

	mismatches := r.Mismatches()
	require.NotEmpty(t, mismatches)

	for _, testCase := range mismatches {
		assert.Equal(t, instructions.Instr_ADD_, testCase.Instr)
		assert.False(t, testCase.Inputs.Overflow.SO, "sticky SO can only differ when the incoming SO is clear")
		assert.NotEqual(t, testCase.NativeOutputs.CR[0].SO, testCase.ModelOutputs.CR[0].SO)
	}
}

func TestRun_NativePanic(t *testing.T) {
	native := func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		panic("SIGILL")
	}

	_, err := run(t, withNative(t, instructions.Instr_MULHD, native), WithWorkers(2))

	require.ErrorIs(t, err, ErrNativeFault)
	assert.Contains(t, err.Error(), "mulhd")
	assert.Contains(t, err.Error(), "SIGILL")
}

func TestRun_NativeError(t *testing.T) {
	failure := errors.New("unsupported on this host")
	native := func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		return operands.InstructionOutput{}, failure
	}

	_, err := run(t, withNative(t, instructions.Instr_MADDLD, native))

	require.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "maddld")
}

func TestRun_MissingInput(t *testing.T) {
	add, err := instructions.Instructions.Instruction(instructions.Instr_ADDO_)
	require.NoError(t, err)

	broken := *add
	broken.Inputs = []registers.InputRegister{registers.InputRegister_Ra, registers.InputRegister_Rb}

	_, err = run(t, []*instructions.InstructionDescriptor{&broken})

	require.ErrorIs(t, err, operands.ErrMissingInput)
	assert.Contains(t, err.Error(), "addo.")
	assert.Contains(t, err.Error(), "overflow")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(instructions.Instructions.AllInstructions(), WithLogger(discardLogger())).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	r, err := run(t, nil)
	require.NoError(t, err)

	assert.NotNil(t, r.TestCases)
	assert.Empty(t, r.TestCases)
	assert.False(t, r.AnyModelMismatch)
}

func TestReplay(t *testing.T) {
	selected, err := instructions.Instructions.Select("divde.", "mulhwu")
	require.NoError(t, err)

	r, err := run(t, selected, WithDomain(DefaultDomain().WithValues([]uint64{0, 1, 0xFFFF_FFFF_FFFF_FFFF})))
	require.NoError(t, err)

	discrepancies, err := Replay(r, &instructions.Instructions)
	require.NoError(t, err)
	assert.Empty(t, discrepancies)

	tampered := r.TestCases[5]
	tampered.ModelOutputs = tampered.ModelOutputs.WithRt(*tampered.ModelOutputs.Rt + 1)
	r.TestCases[5] = tampered

	discrepancies, err = Replay(r, &instructions.Instructions)
	require.NoError(t, err)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, 5, discrepancies[0].Index)
	assert.NotEmpty(t, discrepancies[0].Diff)
}

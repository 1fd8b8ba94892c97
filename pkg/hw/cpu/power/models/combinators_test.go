package models

import (
	"errors"
	"testing"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverflowFamily_CompositionLaw(t *testing.T) {
	for name, p := range overflowPrimitives {
		t.Run(name, func(t *testing.T) {
			plain, o, dot, oDot := Plain(p), WithOverflow(p), WithCR0(p, CompareWidth_64), WithOverflowAndCR0(p, CompareWidth_64)

			for _, ra := range boundaryValues {
				for _, rb := range boundaryValues {
					for _, flags := range registers.AllOverflowFlags() {
						in := input(ra, rb, flags)

						plainOut, err := plain(in)
						require.NoError(t, err)
						oOut, err := o(in)
						require.NoError(t, err)
						dotOut, err := dot(in)
						require.NoError(t, err)
						oDotOut, err := oDot(in)
						require.NoError(t, err)

						assert.Equal(t, *oOut.Rt, *plainOut.Rt)
						assert.Equal(t, *oOut.Rt, *dotOut.Rt)
						assert.Equal(t, *oOut.Rt, *oDotOut.Rt)

						cr0 := registers.ConditionRegisterFromSigned(int64(*oOut.Rt), oOut.Overflow.SO)
						assert.Equal(t, cr0, *dotOut.CR[0])
						assert.Equal(t, cr0, *oDotOut.CR[0])
						assert.Equal(t, *oOut.Overflow, *oDotOut.Overflow)

						assert.Equal(t, []registers.OutputRegister{registers.OutputRegister_Rt}, plainOut.Produced())
						assert.Equal(t, []registers.OutputRegister{registers.OutputRegister_Rt, registers.OutputRegister_Overflow}, oOut.Produced())
						assert.Equal(t, []registers.OutputRegister{registers.OutputRegister_Rt, registers.OutputRegister_CR0}, dotOut.Produced())
						assert.Equal(t, []registers.OutputRegister{registers.OutputRegister_Rt, registers.OutputRegister_Overflow, registers.OutputRegister_CR0}, oDotOut.Produced())
					}
				}
			}
		})
	}
}

func TestWithOverflow_StickySO(t *testing.T) {
	for name, p := range overflowPrimitives {
		o := WithOverflow(p)

		for _, ra := range boundaryValues {
			for _, rb := range boundaryValues {
				withSO, err := o(input(ra, rb, registers.OverflowFlags{SO: true}))
				require.NoError(t, err)
				assert.True(t, withSO.Overflow.SO, "%v(%x, %x) cleared SO", name, ra, rb)

				withoutSO, err := o(input(ra, rb, registers.OverflowFlags{}))
				require.NoError(t, err)
				assert.Equal(t, withoutSO.Overflow.OV, withoutSO.Overflow.SO, "%v(%x, %x)", name, ra, rb)
			}
		}
	}
}

func TestWithOverflow_IgnoresIncomingOVAndOV32(t *testing.T) {
	o := WithOverflow(BinaryOverflow(Add))

	out, err := o(input(1, 2, registers.OverflowFlags{OV: true, OV32: true}))
	require.NoError(t, err)
	assert.Equal(t, registers.OverflowFlags{}, *out.Overflow)
}

func TestPlain_SeedsFreshOverflowState(t *testing.T) {
	plain := Plain(BinaryOverflow(Add))

	withoutFlags, err := plain(operands.InstructionInput{}.WithRa(1).WithRb(2))
	require.NoError(t, err)

	withSO, err := plain(input(1, 2, registers.OverflowFlags{SO: true}))
	require.NoError(t, err)

	assert.True(t, withoutFlags.Equal(withSO))
}

func TestMissingInputs(t *testing.T) {
	tests := []struct {
		name    string
		model   Func
		in      operands.InstructionInput
		missing registers.InputRegister
	}{
		{"plain without ra", Plain(BinaryOverflow(Add)), operands.InstructionInput{}.WithRb(1), registers.InputRegister_Ra},
		{"o without overflow", WithOverflow(BinaryOverflow(Add)), operands.InstructionInput{}.WithRa(1).WithRb(1), registers.InputRegister_Overflow},
		{"dot without rb", WithCR0(BinaryOverflow(Add), CompareWidth_64), operands.InstructionInput{}.WithRa(1).WithOverflow(registers.OverflowFlags{}), registers.InputRegister_Rb},
		{"base without rb", Base(Binary(Modud)), operands.InstructionInput{}.WithRa(1), registers.InputRegister_Rb},
		{"ternary without rc", Base(Ternary(Maddld)), operands.InstructionInput{}.WithRa(1).WithRb(1), registers.InputRegister_Rc},
		{"base dot without overflow", BaseWithCR0(Binary(Mulhd), CompareWidth_64), operands.InstructionInput{}.WithRa(1).WithRb(1), registers.InputRegister_Overflow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.model(test.in)
			require.ErrorIs(t, err, operands.ErrMissingInput)

			var missingInput *operands.MissingInputError
			require.True(t, errors.As(err, &missingInput))
			assert.Equal(t, test.missing, missingInput.Register)
		})
	}
}

func TestBaseWithCR0(t *testing.T) {
	dot := BaseWithCR0(Binary(Mulhwu), CompareWidth_32)

	out, err := dot(input(0xFFFF_FFFF, 6, registers.OverflowFlags{SO: true, OV: true}))
	require.NoError(t, err)

	assert.Equal(t, uint64(0x5_0000_0005), *out.Rt)
	assert.Equal(t, registers.ConditionRegister{GT: true, SO: true}, *out.CR[0])
	assert.Nil(t, out.Overflow, "condition-only records never write the overflow flags")
}

func TestCompareWidth_Signed(t *testing.T) {
	assert.Equal(t, int64(0x1_8000_0000), CompareWidth_64.Signed(0x1_8000_0000))
	assert.Equal(t, int64(-0x8000_0000), CompareWidth_32.Signed(0x1_8000_0000))
}

func TestOperands(t *testing.T) {
	ra, rb, rc := registers.InputRegister_Ra, registers.InputRegister_Rb, registers.InputRegister_Rc

	assert.Equal(t, []registers.InputRegister{ra, rb}, BinaryOverflow(Add).Operands())
	assert.Equal(t, []registers.InputRegister{ra, rb}, Binary(Modsd).Operands())
	assert.Equal(t, []registers.InputRegister{ra, rb, rc}, Ternary(Maddhd).Operands())
}

package registers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputRegister_String(t *testing.T) {
	assert.Equal(t, "ra", InputRegister_Ra.String())
	assert.Equal(t, "rc", InputRegister_Rc.String())
	assert.Equal(t, "overflow", InputRegister_Overflow.String())
	assert.True(t, InputRegister_Rb.IsGpr())
	assert.False(t, InputRegister_Carry.IsGpr())
}

func TestOutputRegister_String(t *testing.T) {
	assert.Equal(t, "rt", OutputRegister_Rt.String())
	assert.Equal(t, "cr0", OutputRegister_CR0.String())
	assert.Equal(t, "cr7", OutputRegister_CR7.String())
	assert.Equal(t, OutputRegister_CR3, OutputRegisterCR(3))

	field, isCR := OutputRegister_CR5.CRField()
	assert.True(t, isCR)
	assert.Equal(t, 5, field)

	_, isCR = OutputRegister_Overflow.CRField()
	assert.False(t, isCR)
}

func TestFormatRegisters(t *testing.T) {
	assert.Equal(t, "ra, rb, overflow", FormatRegisters([]InputRegister{InputRegister_Ra, InputRegister_Rb, InputRegister_Overflow}))
}

func TestLayouts(t *testing.T) {
	xer, err := XerLayout()
	require.NoError(t, err)
	for _, name := range []string{"SO", "OV", "CA", "OV32", "CA32"} {
		assert.Contains(t, xer, " "+name+" ")
	}
	assert.Equal(t, 5, len(strings.Split(strings.TrimSuffix(xer, "\n"), "\n")))

	cr, err := CrLayout()
	require.NoError(t, err)
	assert.Contains(t, cr, " cr0 ")
	assert.Contains(t, cr, " cr7 ")
	assert.NotContains(t, cr, "(unused)")

	field, err := CrFieldLayout()
	require.NoError(t, err)
	assert.Contains(t, field, " LT ")
}

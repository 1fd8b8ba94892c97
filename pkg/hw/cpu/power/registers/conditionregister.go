package registers

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

const (
	// Number of 4-bit fields of the CR register
	CrFields = 8
	// Width in bits of each CR field
	CrFieldBits = 4
)

// One 4-bit field of the CR register
type ConditionRegister struct {
	// Less than zero
	LT bool
	// Greater than zero
	GT bool
	// Equal to zero
	EQ bool
	// Copy of XER.SO
	SO bool
}

// Decodes a CR field from its 4 bits (LT is bit 3, SO is bit 0). Panics if bits does not fit in 4 bits
func ConditionRegisterFrom4Bits(bits uint8) ConditionRegister {
	if bits > 0xF {
		panic(fmt.Sprintf("condition register field value 0x%X does not fit in 4 bits", bits))
	}

	return ConditionRegister{
		LT: bits&0x8 != 0,
		GT: bits&0x4 != 0,
		EQ: bits&0x2 != 0,
		SO: bits&0x1 != 0,
	}
}

// Returns the 4-bit encoding of the field
func (cr ConditionRegister) Bits() uint8 {
	var bits uint8

	for i, set := range []bool{cr.SO, cr.EQ, cr.GT, cr.LT} {
		if set {
			bits |= 1 << i
		}
	}

	return bits
}

// Decodes field n of a 32-bit CR value. Field 0 is the most significant nibble. Panics if field is not in [0, 7]
func ConditionRegisterFromField(cr uint32, field int) ConditionRegister {
	if field < 0 || field >= CrFields {
		panic(fmt.Sprintf("condition register field %v out of range [0, %v]", field, CrFields-1))
	}

	return ConditionRegisterFrom4Bits(uint8(utils.CreateBitView(cr).Read(field*CrFieldBits, CrFieldBits)))
}

// Decodes all fields of a 32-bit CR value, CR0 first
func ConditionRegisterFromFields(cr uint32) [CrFields]ConditionRegister {
	var fields [CrFields]ConditionRegister

	for i := range fields {
		fields[i] = ConditionRegisterFromField(cr, i)
	}

	return fields
}

// Builds the CR field a record-form instruction derives from its signed result
func ConditionRegisterFromSigned(value int64, so bool) ConditionRegister {
	return ConditionRegister{
		LT: value < 0,
		GT: value > 0,
		EQ: value == 0,
		SO: so,
	}
}

func (cr ConditionRegister) String() string {
	return fmt.Sprintf("{lt: %v, gt: %v, eq: %v, so: %v}", cr.LT, cr.GT, cr.EQ, cr.SO)
}

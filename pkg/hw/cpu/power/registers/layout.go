package registers

import (
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// Returns an ascii diagram of the XER bits used by the modeled instructions, MSB numbered
func XerLayout() (string, error) {
	return utils.AsciiFrame([]utils.AsciiFrameField{
		{Name: "SO", Begin: XerBit_SO, Width: 1},
		{Name: "OV", Begin: XerBit_OV, Width: 1},
		{Name: "CA", Begin: XerBit_CA, Width: 1},
		{Name: "OV32", Begin: XerBit_OV32, Width: 1},
		{Name: "CA32", Begin: XerBit_CA32, Width: 1},
	}, 64, "bits", utils.AsciiFrameUnitLayout_LeftToRight, 4)
}

// Returns an ascii diagram of the CR register fields, field 0 being the most significant nibble
func CrLayout() (string, error) {
	fields := utils.Iota(CrFields, func(i int) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  OutputRegisterCR(i).String(),
			Begin: i * CrFieldBits,
			Width: CrFieldBits,
		}
	})

	return utils.AsciiFrame(fields, CrFields*CrFieldBits, "bits", utils.AsciiFrameUnitLayout_LeftToRight, 4)
}

// Returns an ascii diagram of the bits of a single CR field
func CrFieldLayout() (string, error) {
	return utils.AsciiFrame([]utils.AsciiFrameField{
		{Name: "LT", Begin: 0, Width: 1},
		{Name: "GT", Begin: 1, Width: 1},
		{Name: "EQ", Begin: 2, Width: 1},
		{Name: "SO", Begin: 3, Width: 1},
	}, CrFieldBits, "bit", utils.AsciiFrameUnitLayout_LeftToRight, 4)
}

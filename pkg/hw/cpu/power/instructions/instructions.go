package instructions

import (
	"slices"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/models"
)

// Contains all the modeled instructions
var Instructions InstructionsDescriptor = NewInstructionsDescriptor(slices.Concat(
	overflowFamily(Instr_ADD, Instr_ADDO, Instr_ADD_, Instr_ADDO_,
		"Add", models.BinaryOverflow(models.Add)),
	overflowFamily(Instr_SUBF, Instr_SUBFO, Instr_SUBF_, Instr_SUBFO_,
		"Subtract from (rb - ra)", models.BinaryOverflow(models.Subf)),
	overflowFamily(Instr_DIVDE, Instr_DIVDEO, Instr_DIVDE_, Instr_DIVDEO_,
		"Divide doubleword extended", models.BinaryOverflow(models.Divde)),
	overflowFamily(Instr_DIVDEU, Instr_DIVDEUO, Instr_DIVDEU_, Instr_DIVDEUO_,
		"Divide doubleword extended unsigned", models.BinaryOverflow(models.Divdeu)),
	overflowFamily(Instr_DIVD, Instr_DIVDO, Instr_DIVD_, Instr_DIVDO_,
		"Divide doubleword", models.BinaryOverflow(models.Divd)),
	overflowFamily(Instr_DIVDU, Instr_DIVDUO, Instr_DIVDU_, Instr_DIVDUO_,
		"Divide doubleword unsigned", models.BinaryOverflow(models.Divdu)),
	overflowFamily(Instr_DIVWE, Instr_DIVWEO, Instr_DIVWE_, Instr_DIVWEO_,
		"Divide word extended", models.BinaryOverflow(models.Divwe)),
	overflowFamily(Instr_DIVWEU, Instr_DIVWEUO, Instr_DIVWEU_, Instr_DIVWEUO_,
		"Divide word extended unsigned", models.BinaryOverflow(models.Divweu)),
	overflowFamily(Instr_DIVW, Instr_DIVWO, Instr_DIVW_, Instr_DIVWO_,
		"Divide word", models.BinaryOverflow(models.Divw)),
	overflowFamily(Instr_DIVWU, Instr_DIVWUO, Instr_DIVWU_, Instr_DIVWUO_,
		"Divide word unsigned", models.BinaryOverflow(models.Divwu)),
	single(Instr_MODSD, "Modulo signed doubleword", models.Binary(models.Modsd)),
	single(Instr_MODUD, "Modulo unsigned doubleword", models.Binary(models.Modud)),
	single(Instr_MODSW, "Modulo signed word", models.Binary(models.Modsw)),
	single(Instr_MODUW, "Modulo unsigned word", models.Binary(models.Moduw)),
	overflowFamily(Instr_MULLW, Instr_MULLWO, Instr_MULLW_, Instr_MULLWO_,
		"Multiply low word", models.BinaryOverflow(models.Mullw)),
	// CR0 of the high word multiplies compares the low word only
	crFamily(Instr_MULHW, Instr_MULHW_, "Multiply high word", models.Binary(models.Mulhw), models.CompareWidth_32),
	crFamily(Instr_MULHWU, Instr_MULHWU_, "Multiply high word unsigned", models.Binary(models.Mulhwu), models.CompareWidth_32),
	overflowFamily(Instr_MULLD, Instr_MULLDO, Instr_MULLD_, Instr_MULLDO_,
		"Multiply low doubleword", models.BinaryOverflow(models.Mulld)),
	crFamily(Instr_MULHD, Instr_MULHD_, "Multiply high doubleword", models.Binary(models.Mulhd), models.CompareWidth_64),
	crFamily(Instr_MULHDU, Instr_MULHDU_, "Multiply high doubleword unsigned", models.Binary(models.Mulhdu), models.CompareWidth_64),
	single(Instr_MADDHD, "Multiply-add high doubleword", models.Ternary(models.Maddhd)),
	single(Instr_MADDHDU, "Multiply-add high doubleword unsigned", models.Ternary(models.Maddhdu)),
	single(Instr_MADDLD, "Multiply-add low doubleword", models.Ternary(models.Maddld)),
))

package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

var ErrUnknownInstr = errors.New("unknown instruction")

func unknownInstr(i Instr) error {
	return utils.MakeError(ErrUnknownInstr, "Instr(%d)", uint(i))
}

// Maps instructions to their mnemonics and back
type InstrsDescriptor struct {
	mnemonics      map[Instr]string
	mnemonicsToOps map[string]Instr
}

// Number of instructions in the table
func (d *InstrsDescriptor) TotalInstrs() int {
	return len(d.mnemonics)
}

// Returns the mnemonic string representation of the instruction
func (d *InstrsDescriptor) Mnemonic(i Instr) string {
	if mnemonic, hasMnemonic := d.mnemonics[i]; hasMnemonic {
		return mnemonic
	}

	return fmt.Sprintf("Instr(%d)", uint(i))
}

// Returns the instruction corresponding to the given mnemonic
func (d *InstrsDescriptor) ParseInstr(name string) (Instr, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if strings.HasSuffix(normalized, "_") {
		normalized = strings.TrimSuffix(normalized, "_") + "."
	}

	if instr, hasInstr := d.mnemonicsToOps[normalized]; hasInstr {
		return instr, nil
	}

	return 0, utils.MakeError(ErrUnknownInstr, "'%v'", name)
}

// Initializes the mnemonics table, panics if an instruction has no mnemonic or two share one
func NewInstrsDescriptor(mnemonics map[Instr]string) InstrsDescriptor {
	for _, instr := range utils.Iota(int(TOTAL_INSTRS), func(i int) Instr { return Instr(i) }) {
		if _, hasInstr := mnemonics[instr]; !hasInstr {
			panic(fmt.Sprintf("missing entry for instruction %d in mnemonics table. Make sure you've added all Instr -> Mnemonic entries in the NewInstrsDescriptor() call", uint(instr)))
		}
	}

	d := InstrsDescriptor{
		mnemonics:      mnemonics,
		mnemonicsToOps: utils.InvertedMap(mnemonics),
	}

	if len(d.mnemonicsToOps) != int(TOTAL_INSTRS) || d.TotalInstrs() != int(TOTAL_INSTRS) {
		panic("duplicated or extra entries in instruction mnemonics table")
	}

	return d
}

// Mnemonics of all modeled instructions
var Instrs InstrsDescriptor = NewInstrsDescriptor(map[Instr]string{
	Instr_ADD:      "add",
	Instr_ADDO:     "addo",
	Instr_ADD_:     "add.",
	Instr_ADDO_:    "addo.",
	Instr_SUBF:     "subf",
	Instr_SUBFO:    "subfo",
	Instr_SUBF_:    "subf.",
	Instr_SUBFO_:   "subfo.",
	Instr_DIVDE:    "divde",
	Instr_DIVDEO:   "divdeo",
	Instr_DIVDE_:   "divde.",
	Instr_DIVDEO_:  "divdeo.",
	Instr_DIVDEU:   "divdeu",
	Instr_DIVDEUO:  "divdeuo",
	Instr_DIVDEU_:  "divdeu.",
	Instr_DIVDEUO_: "divdeuo.",
	Instr_DIVD:     "divd",
	Instr_DIVDO:    "divdo",
	Instr_DIVD_:    "divd.",
	Instr_DIVDO_:   "divdo.",
	Instr_DIVDU:    "divdu",
	Instr_DIVDUO:   "divduo",
	Instr_DIVDU_:   "divdu.",
	Instr_DIVDUO_:  "divduo.",
	Instr_DIVWE:    "divwe",
	Instr_DIVWEO:   "divweo",
	Instr_DIVWE_:   "divwe.",
	Instr_DIVWEO_:  "divweo.",
	Instr_DIVWEU:   "divweu",
	Instr_DIVWEUO:  "divweuo",
	Instr_DIVWEU_:  "divweu.",
	Instr_DIVWEUO_: "divweuo.",
	Instr_DIVW:     "divw",
	Instr_DIVWO:    "divwo",
	Instr_DIVW_:    "divw.",
	Instr_DIVWO_:   "divwo.",
	Instr_DIVWU:    "divwu",
	Instr_DIVWUO:   "divwuo",
	Instr_DIVWU_:   "divwu.",
	Instr_DIVWUO_:  "divwuo.",
	Instr_MODSD:    "modsd",
	Instr_MODUD:    "modud",
	Instr_MODSW:    "modsw",
	Instr_MODUW:    "moduw",
	Instr_MULLW:    "mullw",
	Instr_MULLWO:   "mullwo",
	Instr_MULLW_:   "mullw.",
	Instr_MULLWO_:  "mullwo.",
	Instr_MULHW:    "mulhw",
	Instr_MULHW_:   "mulhw.",
	Instr_MULHWU:   "mulhwu",
	Instr_MULHWU_:  "mulhwu.",
	Instr_MULLD:    "mulld",
	Instr_MULLDO:   "mulldo",
	Instr_MULLD_:   "mulld.",
	Instr_MULLDO_:  "mulldo.",
	Instr_MULHD:    "mulhd",
	Instr_MULHD_:   "mulhd.",
	Instr_MULHDU:   "mulhdu",
	Instr_MULHDU_:  "mulhdu.",
	Instr_MADDHD:   "maddhd",
	Instr_MADDHDU:  "maddhdu",
	Instr_MADDLD:   "maddld",
})

package instructions

// Identifies a modeled instruction. Carries no data, the descriptor table holds everything else
type Instr uint

const (
	// Add
	Instr_ADD Instr = iota
	Instr_ADDO
	Instr_ADD_
	Instr_ADDO_
	// Subtract from
	Instr_SUBF
	Instr_SUBFO
	Instr_SUBF_
	Instr_SUBFO_
	// Divide doubleword extended
	Instr_DIVDE
	Instr_DIVDEO
	Instr_DIVDE_
	Instr_DIVDEO_
	// Divide doubleword extended unsigned
	Instr_DIVDEU
	Instr_DIVDEUO
	Instr_DIVDEU_
	Instr_DIVDEUO_
	// Divide doubleword
	Instr_DIVD
	Instr_DIVDO
	Instr_DIVD_
	Instr_DIVDO_
	// Divide doubleword unsigned
	Instr_DIVDU
	Instr_DIVDUO
	Instr_DIVDU_
	Instr_DIVDUO_
	// Divide word extended
	Instr_DIVWE
	Instr_DIVWEO
	Instr_DIVWE_
	Instr_DIVWEO_
	// Divide word extended unsigned
	Instr_DIVWEU
	Instr_DIVWEUO
	Instr_DIVWEU_
	Instr_DIVWEUO_
	// Divide word
	Instr_DIVW
	Instr_DIVWO
	Instr_DIVW_
	Instr_DIVWO_
	// Divide word unsigned
	Instr_DIVWU
	Instr_DIVWUO
	Instr_DIVWU_
	Instr_DIVWUO_
	// Modulo
	Instr_MODSD
	Instr_MODUD
	Instr_MODSW
	Instr_MODUW
	// Multiply low word
	Instr_MULLW
	Instr_MULLWO
	Instr_MULLW_
	Instr_MULLWO_
	// Multiply high word
	Instr_MULHW
	Instr_MULHW_
	Instr_MULHWU
	Instr_MULHWU_
	// Multiply low doubleword
	Instr_MULLD
	Instr_MULLDO
	Instr_MULLD_
	Instr_MULLDO_
	// Multiply high doubleword
	Instr_MULHD
	Instr_MULHD_
	Instr_MULHDU
	Instr_MULHDU_
	// Multiply-add
	Instr_MADDHD
	Instr_MADDHDU
	Instr_MADDLD

	// Total instructions modeled
	TOTAL_INSTRS
)

// Returns the assembly mnemonic of the instruction
func (i Instr) String() string {
	return Instrs.Mnemonic(i)
}

func (i Instr) MarshalText() ([]byte, error) {
	if i >= TOTAL_INSTRS {
		return nil, unknownInstr(i)
	}

	return []byte(i.String()), nil
}

func (i *Instr) UnmarshalText(text []byte) error {
	instr, err := ParseInstr(string(text))
	if err != nil {
		return err
	}

	*i = instr
	return nil
}

// Parses an instruction from its mnemonic. Record forms can be spelled with a trailing '_' instead of '.'
func ParseInstr(name string) (Instr, error) {
	return Instrs.ParseInstr(name)
}

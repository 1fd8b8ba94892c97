package operands

import (
	"errors"
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
)

var ErrMissingInput = errors.New("missing instruction input")

// Returned when a model reads an input register that was not supplied
type MissingInputError struct {
	Register registers.InputRegister
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMissingInput, e.Register)
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

func missing(r registers.InputRegister) error {
	return &MissingInputError{Register: r}
}

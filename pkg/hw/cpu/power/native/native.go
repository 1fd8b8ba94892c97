// Package native collects hardware reference implementations of the modeled
// instructions. Architecture specific packages register their functions from
// init(), so on hosts without them the registry stays empty and the harness
// only evaluates the software models.
package native

import (
	"fmt"
	"sync"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/models"
)

var (
	lock      sync.RWMutex
	functions = map[instructions.Instr]models.Func{}
)

// Registers the hardware reference of an instruction. Panics if one was already registered
func Register(instr instructions.Instr, fn models.Func) {
	if fn == nil {
		panic(fmt.Sprintf("nil native function for instruction '%v'", instr))
	}

	lock.Lock()
	defer lock.Unlock()

	if _, registered := functions[instr]; registered {
		panic(fmt.Sprintf("native function for instruction '%v' registered twice", instr))
	}

	functions[instr] = fn
}

// Returns a snapshot of the registered hardware references
func Functions() map[instructions.Instr]models.Func {
	lock.RLock()
	defer lock.RUnlock()

	snapshot := make(map[instructions.Instr]models.Func, len(functions))
	for instr, fn := range functions {
		snapshot[instr] = fn
	}

	return snapshot
}

// Returns whether any hardware reference is registered
func Available() bool {
	lock.RLock()
	defer lock.RUnlock()

	return len(functions) > 0
}

// Returns the instructions registry with all the registered hardware references attached
func Attach(d *instructions.InstructionsDescriptor) instructions.InstructionsDescriptor {
	return d.WithNative(Functions())
}

func reset() {
	lock.Lock()
	defer lock.Unlock()

	functions = map[instructions.Instr]models.Func{}
}

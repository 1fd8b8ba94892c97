// Package harness runs every modeled instruction over the Cartesian product of
// boundary input values, comparing the software model against the hardware
// reference when one is attached.
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var ErrNativeFault = errors.New("native function fault")

type Harness struct {
	instructions []*instructions.InstructionDescriptor
	domain       Domain
	workers      int
	logger       *slog.Logger
}

type Option func(*Harness)

// Maximum number of jobs evaluated concurrently
func WithWorkers(workers int) Option {
	return func(h *Harness) {
		if workers > 0 {
			h.workers = workers
		}
	}
}

func WithDomain(domain Domain) Option {
	return func(h *Harness) {
		h.domain = domain
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// Creates a harness over the given instructions, in the order the report will list them
func New(instrs []*instructions.InstructionDescriptor, options ...Option) *Harness {
	h := &Harness{
		instructions: instrs,
		domain:       DefaultDomain(),
		workers:      runtime.GOMAXPROCS(0),
		logger:       slog.Default(),
	}

	for _, option := range options {
		option(h)
	}

	return h
}

// Unit of parallel work: one instruction with its outermost input register fixed to one domain value
type job struct {
	instr *instructions.InstructionDescriptor
	// Index of the outermost register value, -1 if the instruction reads no register
	outer int
}

func (h *Harness) jobs() []job {
	var jobs []job

	for _, instr := range h.instructions {
		if len(instr.Inputs) == 0 {
			jobs = append(jobs, job{instr: instr, outer: -1})
			continue
		}

		for i := 0; i < h.domain.Size(instr.Inputs[0]); i++ {
			jobs = append(jobs, job{instr: instr, outer: i})
		}
	}

	return jobs
}

func (h *Harness) runJob(ctx context.Context, j job) ([]report.TestCase, error) {
	base := operands.InstructionInput{}
	inner := j.instr.Inputs

	if j.outer >= 0 {
		base = h.domain.assign(base, inner[0], j.outer)
		inner = inner[1:]
	}

	testCases := make([]report.TestCase, 0, h.domain.Combinations(inner))

	err := Enumerate(inner, h.domain, base, func(in operands.InstructionInput) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		testCase, err := h.evaluate(j.instr, in)
		if err != nil {
			return err
		}

		testCases = append(testCases, testCase)
		return nil
	})

	return testCases, err
}

// Calls the hardware reference, turning a panic into ErrNativeFault
func callNative(instr *instructions.InstructionDescriptor, in operands.InstructionInput) (out operands.InstructionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = utils.MakeError(ErrNativeFault, "%v with inputs %v: %v", instr.Mnemonic, in, r)
		}
	}()

	return instr.Native(in)
}

func (h *Harness) evaluate(instr *instructions.InstructionDescriptor, in operands.InstructionInput) (report.TestCase, error) {
	model, err := instr.Model(in)
	if err != nil {
		return report.TestCase{}, fmt.Errorf("%v model: %w", instr.Mnemonic, err)
	}

	var native *operands.InstructionOutput

	if instr.HasNative() {
		out, err := callNative(instr, in)
		if err != nil {
			if errors.Is(err, ErrNativeFault) {
				return report.TestCase{}, err
			}

			return report.TestCase{}, fmt.Errorf("%v native: %w", instr.Mnemonic, err)
		}

		native = &out
	}

	testCase := report.NewTestCase(instr.Instr, in, native, model)

	if testCase.ModelMismatch {
		h.logger.Warn("model mismatch",
			slog.String("instr", instr.Mnemonic),
			slog.String("inputs", in.String()),
			slog.String("diff", report.DiffOutputs(*native, model)))
	}

	return testCase, nil
}

// Evaluates every instruction over its input domain. Model and hardware errors abort the run
func (h *Harness) Run(ctx context.Context) (*report.Report, error) {
	jobs := h.jobs()
	results := make([][]report.TestCase, len(jobs))
	start := time.Now()

	h.logger.Info("running differential harness",
		slog.Int("instructions", len(h.instructions)),
		slog.Int("jobs", len(jobs)),
		slog.Int("workers", h.workers),
		slog.Int("values", len(h.domain.Values)))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(h.workers)

	for i, j := range jobs {
		group.Go(func() error {
			testCases, err := h.runJob(groupCtx, j)
			if err != nil {
				return err
			}

			results[i] = testCases
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, testCases := range results {
		total += len(testCases)
	}

	testCases := make([]report.TestCase, 0, total)
	for _, slot := range results {
		testCases = append(testCases, slot...)
	}

	r := report.New(testCases)

	for _, stats := range r.Stats() {
		h.logger.Debug("instruction done",
			slog.String("instr", stats.Instr.String()),
			slog.Int("cases", stats.Cases),
			slog.Int("native", stats.Native),
			slog.Int("mismatches", stats.Mismatches))
	}

	h.logger.Info("differential harness done",
		slog.Int("cases", len(r.TestCases)),
		slog.Int("mismatches", len(r.Mismatches())),
		slog.Duration("elapsed", time.Since(start)))

	return r, nil
}

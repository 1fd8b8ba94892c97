package report

import (
	"fmt"
	"os"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var viewMismatchesOnly bool

var viewCmd = &cobra.Command{
	Use:   "view report",
	Short: "Browse a report interactively",
	Long: `Opens an interactive browser over the test cases of a report. The left pane lists the
test cases, the right pane shows the full record of the selected one.

Keys:
  up/down, j/k  select test case
  tab           switch focus between panes
  q, esc        quit`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := report.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		testCases := r.TestCases
		if viewMismatchesOnly {
			testCases = r.Mismatches()
		}

		if err := newViewer(args[0], testCases).Run(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	},
}

type viewer struct {
	app       *tview.Application
	table     *tview.Table
	record    *tview.TextView
	testCases []report.TestCase
}

func newViewer(title string, testCases []report.TestCase) *viewer {
	v := &viewer{
		app:       tview.NewApplication(),
		table:     tview.NewTable(),
		record:    tview.NewTextView(),
		testCases: testCases,
	}

	v.table.SetSelectable(true, false).SetFixed(1, 0)
	v.table.SetBorder(true).SetTitle(fmt.Sprintf(" %v (%v test cases) ", title, len(testCases)))

	for column, header := range []string{"#", "instr", "inputs", "native", "mismatch"} {
		v.table.SetCell(0, column, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	for i, testCase := range testCases {
		color := tcell.ColorWhite
		if testCase.ModelMismatch {
			color = tcell.ColorRed
		}

		native := "-"
		if testCase.NativeOutputs != nil {
			native = "yes"
		}

		mismatch := ""
		if testCase.ModelMismatch {
			mismatch = "MISMATCH"
		}

		for column, text := range []string{fmt.Sprint(i), testCase.Instr.String(), testCase.Inputs.String(), native, mismatch} {
			v.table.SetCell(i+1, column, tview.NewTableCell(tview.Escape(text)).SetTextColor(color))
		}
	}

	v.record.SetDynamicColors(true).SetScrollable(true)
	v.record.SetBorder(true).SetTitle(" record ")

	v.table.SetSelectionChangedFunc(func(row, column int) {
		v.show(row - 1)
	})
	v.table.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			v.app.Stop()
		}
	})

	layout := tview.NewFlex().
		AddItem(v.table, 0, 3, true).
		AddItem(v.record, 0, 2, false)

	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab:
			if v.table.HasFocus() {
				v.app.SetFocus(v.record)
			} else {
				v.app.SetFocus(v.table)
			}
			return nil
		case event.Rune() == 'q':
			v.app.Stop()
			return nil
		}

		return event
	})

	v.app.SetRoot(layout, true)

	if len(testCases) > 0 {
		v.table.Select(1, 0)
		v.show(0)
	} else {
		v.record.SetText("no test cases")
	}

	return v
}

// Renders the persisted record of the i-th listed test case
func (v *viewer) show(i int) {
	if i < 0 || i >= len(v.testCases) {
		return
	}

	record, err := report.MarshalTestCase(v.testCases[i], report.Format_YAML)
	if err != nil {
		record = err.Error()
	}

	v.record.SetText(tview.Escape(record))
	v.record.ScrollToBeginning()
}

func (v *viewer) Run() error {
	return v.app.Run()
}

func init() {
	ReportCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVarP(&viewMismatchesOnly, "mismatches", "m", false, "List only the test cases with a model mismatch")
}

package component

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/robgonnella/netscope/internal/ui/style"
)

const appText = `
█▄ █ █▀▀ ▀█▀ █▀ █▀▀ █▀█ █▀█ █▀▀
█ ▀█ ██▄  █  ▄█ █▄▄ █▄█ █▀▀ ██▄`

// Header shows the watched targets and the summary of the latest scan
type Header struct {
	root    *tview.Flex
	summary *tview.TextView
}

// NewHeader returns a new instance of Header
func NewHeader(targets []string, interval int) *Header {
	root := tview.NewFlex().SetDirection(tview.FlexColumn)

	left := tview.NewFlex().SetDirection(tview.FlexRow)
	right := tview.NewFlex().SetDirection(tview.FlexRow)

	title := tview.NewTextView().
		SetText(appText).
		SetTextColor(style.ColorPurple)

	legend := tview.NewTextView().
		SetText("\"q\" or ctrl-c to quit").
		SetTextColor(style.ColorOrange)

	left.AddItem(title, 0, 1, false)
	left.AddItem(legend, 1, 1, false)

	targetText := tview.NewTextView().
		SetTextAlign(tview.AlignRight).
		SetTextColor(style.ColorLightGreen).
		SetText(fmt.Sprintf(
			"Watching %s every %ds",
			strings.Join(targets, ","),
			interval,
		))

	summary := tview.NewTextView().
		SetTextAlign(tview.AlignRight).
		SetTextColor(style.ColorLightGreen).
		SetText("Waiting for first scan…")

	right.AddItem(tview.NewTextView(), 0, 1, false)
	right.AddItem(targetText, 1, 1, false)
	right.AddItem(summary, 1, 1, false)

	root.AddItem(left, 40, 1, false)
	root.AddItem(right, 0, 1, false)

	return &Header{
		root:    root,
		summary: summary,
	}
}

// Primitive returns the underlying tview primitive
func (h *Header) Primitive() tview.Primitive {
	return h.root
}

// SetSummary renders report's statistics
func (h *Header) SetSummary(report *scanner.Report) {
	h.summary.SetText(fmt.Sprintf(
		"%d/%d hosts up, %.1f%% loss, min/avg/max = %d/%d/%d ms",
		report.Received,
		report.Sent,
		report.LossPercent,
		report.MinMS,
		report.AvgMS,
		report.MaxMS,
	))
}

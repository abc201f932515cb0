package component

import (
	"strconv"

	"github.com/rivo/tview"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/robgonnella/netscope/internal/ui/style"
)

// HostTable shows the per host results of the latest scan
type HostTable struct {
	table         *tview.Table
	columnHeaders []string
}

// NewHostTable returns a new instance of HostTable
func NewHostTable() *HostTable {
	columnHeaders := []string{"TARGET", "STATUS", "LATENCY"}

	return &HostTable{
		table:         createTable("hosts", columnHeaders),
		columnHeaders: columnHeaders,
	}
}

// Primitive returns the underlying tview primitive
func (t *HostTable) Primitive() tview.Primitive {
	return t.table
}

// UpdateTable replaces the table rows with the hosts in report
func (t *HostTable) UpdateTable(report *scanner.Report) {
	for t.table.GetRowCount() > 2 {
		t.table.RemoveRow(t.table.GetRowCount() - 1)
	}

	for rowIdx, host := range report.Hosts {
		status := "offline"
		latency := "-"
		color := style.ColorDimGrey

		if host.Success {
			status = "online"
			latency = strconv.Itoa(host.LatencyMS) + "ms"
			color = style.ColorMediumGreen
		}

		row := []string{host.Target, status, latency}

		for col, text := range row {
			cell := tview.NewTableCell(text)
			cell.SetExpansion(1)
			cell.SetAlign(tview.AlignLeft)
			cell.SetTextColor(style.ColorWhite)

			if col == 1 {
				cell.SetTextColor(color)
			}

			t.table.SetCell(rowIdx+2, col, cell)
		}
	}
}

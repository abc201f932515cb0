package component

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rivo/tview"
	"github.com/robgonnella/netscope/internal/event"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/robgonnella/netscope/internal/ui/style"
)

// EventTable keeps a rolling history of watch events
type EventTable struct {
	table         *tview.Table
	columnHeaders []string
	count         uint
	maxEvents     uint
}

// NewEventTable returns a new instance of EventTable
func NewEventTable() *EventTable {
	columnHeaders := []string{
		"NO",
		"TIME",
		"EVENT TYPE",
		"DETAIL",
	}

	return &EventTable{
		table:         createTable("events", columnHeaders),
		columnHeaders: columnHeaders,
		count:         0,
		maxEvents:     50,
	}
}

// Primitive returns the underlying tview primitive
func (t *EventTable) Primitive() tview.Primitive {
	return t.table
}

// UpdateTable appends evt to the table, dropping the oldest row once
// maxEvents is exceeded
func (t *EventTable) UpdateTable(evt event.Event) {
	t.count++

	color := style.ColorWhite
	detail := ""

	switch payload := evt.Payload.(type) {
	case *scanner.Report:
		detail = fmt.Sprintf(
			"%d/%d received, %.1f%% loss, min/avg/max %d/%d/%d ms",
			payload.Received,
			payload.Sent,
			payload.LossPercent,
			payload.MinMS,
			payload.AvgMS,
			payload.MaxMS,
		)
	case error:
		detail = payload.Error()
		color = style.ColorRed
	}

	row := []string{
		strconv.Itoa(int(t.count)),
		time.Now().Format(time.TimeOnly),
		string(evt.Type),
		detail,
	}

	rowIdx := t.table.GetRowCount()

	for col, text := range row {
		cell := tview.NewTableCell(text)
		cell.SetExpansion(1)
		cell.SetAlign(tview.AlignLeft)
		cell.SetTextColor(color)
		t.table.SetCell(rowIdx, col, cell)
	}

	if t.count > t.maxEvents {
		t.table.RemoveRow(2)
	}
}

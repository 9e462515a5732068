package output

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/crucial707/lab-inventory/internal/models"
)

// RenderTable prints a pretty table to stdout.
func RenderTable(headers []string, rows [][]interface{}) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	headerRow := table.Row{}
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	t.Render()
}

// AssetTable renders the standard asset listing.
func AssetTable(assets []models.Asset) {
	rows := make([][]interface{}, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []interface{}{a.ID, a.Name, a.Category, a.Location, a.Status, a.Quantity, a.DueDate})
	}
	RenderTable([]string{"ID", "Name", "Category", "Location", "Status", "Qty", "Due Date"}, rows)
}

// AuditTable renders audit entries, newest first.
func AuditTable(entries []models.AuditEntry) {
	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{e.Time, e.Asset, e.Action, e.Detail})
	}
	RenderTable([]string{"Time", "Asset", "Action", "Detail"}, rows)
}

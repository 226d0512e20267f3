package ui

import (
	"context"
	"fmt"

	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/logging"
	"github.com/atomicstack/takeoff/internal/logging/events"
	"github.com/atomicstack/takeoff/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// exportResultMsg mirrors the async export response.
type exportResultMsg struct {
	format inventory.Format
	path   string
	rows   int
	err    error
}

// exportCmd snapshots the job and inventory and writes them off the update
// loop.
func (m *Model) exportCmd(format inventory.Format) tea.Cmd {
	job := m.Job()
	items := m.items.Items()
	dir := m.exportDir
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Exporting %s…", format))
	return m.bus.Execute(command.Request{
		ID:    "export:" + string(format),
		Label: inventory.FileName(job.Address, format),
		Handler: func(ctx context.Context) tea.Msg {
			if err := ctx.Err(); err != nil {
				return exportResultMsg{format: format, err: err}
			}
			path, err := inventory.Export(dir, format, job, items)
			return exportResultMsg{format: format, path: path, rows: len(items), err: err}
		},
	})
}

func (m *Model) handleExportResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(exportResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		logging.Error(result.err)
		events.Action.Error(result.err)
		return nil
	}
	info := fmt.Sprintf("Exported %d rows to %s", result.rows, result.path)
	m.errMsg = ""
	m.setInfo(info)
	events.Inventory.Export(string(result.format), result.path, result.rows)
	events.Action.Success(info)
	return nil
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"stationplot/internal/station"
)

type pickKind int

const (
	pickNone pickKind = iota
	pickX
	pickY
	pickState
	pickFile
)

func (k pickKind) title() string {
	switch k {
	case pickX:
		return "X variable"
	case pickY:
		return "Y variable"
	case pickState:
		return "State"
	case pickFile:
		return "Files"
	}
	return ""
}

type pickItem struct {
	title, desc string
	value       string
}

func (p pickItem) Title() string       { return p.title }
func (p pickItem) Description() string { return p.desc }
func (p pickItem) FilterValue() string { return p.title + " " + p.value }

// openPicker fills the list for kind and preselects the current value.
func (m *Model) openPicker(kind pickKind) {
	var items []list.Item
	current := ""
	switch kind {
	case pickX, pickY:
		for _, v := range station.Options() {
			items = append(items, pickItem{title: v.Label(), desc: v.AxisLabel(), value: string(v)})
		}
		current = string(m.xVar)
		if kind == pickY {
			current = string(m.yVar)
		}
	case pickState:
		for _, s := range station.States() {
			items = append(items, pickItem{title: s, value: s})
		}
		current = m.state
	case pickFile:
		items = m.dataFiles()
		current = m.selPath
		if len(items) == 0 {
			m.status = "no data files in " + m.cwd
			return
		}
	default:
		return
	}
	m.picking = kind
	m.l.Title = kind.title()
	m.l.ResetFilter()
	m.l.SetItems(items)
	m.l.SetSize(32, min(len(items)+4, max(6, m.height-8)))
	for i, it := range items {
		if it.(pickItem).value == current {
			m.l.Select(i)
			break
		}
	}
}

// applyPick commits the highlighted item and reports whether a redraw is due.
func (m *Model) applyPick() bool {
	kind := m.picking
	m.picking = pickNone
	it, ok := m.l.SelectedItem().(pickItem)
	if !ok {
		return false
	}
	switch kind {
	case pickX:
		m.xVar = station.Variable(it.value)
	case pickY:
		m.yVar = station.Variable(it.value)
	case pickState:
		m.state = it.value
	case pickFile:
		return m.loadPath(it.value)
	default:
		return false
	}
	m.log.Info("selection changed", "picker", kind.title(), "value", it.value)
	return true
}

// dataFiles lists loadable files in the working directory.
func (m *Model) dataFiles() []list.Item {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return nil
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".json" {
			items = append(items, pickItem{title: name, desc: ext, value: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(pickItem).title < items[j].(pickItem).title })
	return items
}

// loadPath swaps in a new dataset; on failure the current one stays.
func (m *Model) loadPath(p string) bool {
	ds, err := station.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Error("load failed", "path", p, "error", err)
		return false
	}
	m.ds = ds
	m.selPath = p
	m.focus, m.focusByHover = "", false
	m.log.Info("dataset loaded", "path", p, "records", ds.Len())
	return true
}

func (m Model) loadedStatus() string {
	return fmt.Sprintf("loaded: %s  records=%d", filepath.Base(m.selPath), m.ds.Len())
}

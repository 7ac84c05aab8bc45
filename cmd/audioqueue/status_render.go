package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/audio-queue/internal/status"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderStatus(snap status.Snapshot, showAll bool) string {
	var b strings.Builder

	worker := "not running"
	if snap.WorkerRunning {
		worker = "running"
	}
	fmt.Fprintf(&b, "Worker: %s\n", worker)
	fmt.Fprintf(&b, "Inbox: %d  Done: %d  Failed: %d  Records: %d\n",
		len(snap.Inbox), len(snap.Done), len(snap.Failed), snap.Records)

	type section struct {
		state   string
		entries []status.Entry
	}
	sections := []section{{"inbox", snap.Inbox}}
	if showAll {
		sections = append(sections, section{"failed", snap.Failed}, section{"done", snap.Done})
	}

	var rows [][]string
	for _, s := range sections {
		for _, e := range s.entries {
			rows = append(rows, []string{
				s.state,
				e.Name,
				humanize.Bytes(uint64(e.Size)),
				humanize.RelTime(e.ModTime, snap.TakenAt, "ago", "from now"),
			})
		}
	}

	if len(rows) == 0 {
		b.WriteString("\nNothing waiting in the inbox.\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(renderTable(
		[]string{"State", "File", "Size", "Modified"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
	b.WriteString("\n")
	return b.String()
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"marquee/internal/archive"
	"marquee/internal/media"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
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

func renderReleases(releases []media.Release) string {
	rows := make([][]string, 0, len(releases))
	for _, rel := range releases {
		rows = append(rows, []string{
			rel.Director,
			rel.Title,
			rel.ReleaseDate,
			rel.IMDbURL(),
		})
	}
	return renderTable(
		[]string{"Director", "Title", "Release Date", "IMDb"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

func renderArchiveRecords(records []archive.Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		announced := ""
		if !rec.AnnouncedAt.IsZero() {
			announced = rec.AnnouncedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			strconv.FormatInt(rec.TMDBID, 10),
			rec.Title,
			rec.Director,
			rec.IMDbID,
			announced,
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Director", "IMDb ID", "Announced"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

const day = 24 * time.Hour

// SVG renders a plan into a standalone SVG document. All positioning
// is derived from the plan's primitives; no date math beyond the
// linear date-to-pixel scale happens here.
func SVG(plan *models.RenderPlan, cfg Config) string {
	rows := len(plan.AxisLabels)
	plotWidth := cfg.Layout.Width - cfg.Layout.MarginLeft - cfg.Layout.MarginRight
	plotHeight := rows * cfg.Layout.RowHeight
	height := cfg.Layout.MarginTop + plotHeight + cfg.Layout.MarginBottom

	axisMin, axisMax := axisRange(plan)
	scale := func(t time.Time) int {
		span := axisMax.Sub(axisMin)
		if span <= 0 {
			span = day
		}
		offset := float64(t.Sub(axisMin)) / float64(span)
		return cfg.Layout.MarginLeft + int(offset*float64(plotWidth))
	}
	rowTop := func(slot int) int {
		return cfg.Layout.MarginTop + (rows-1-slot)*cfg.Layout.RowHeight
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.title-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.axis-text { font-family: %s; font-size: %dpx; fill: %s; }
.bar-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: #ffffff; }
</style>
</defs>
`, cfg.Layout.Width, height, plan.Background,
		cfg.Font.Family, cfg.Font.Size+4, plan.GridColor,
		cfg.Font.Family, cfg.Font.Size, plan.GridColor,
		cfg.Font.Family, cfg.Font.Size-1))

	writeGridlines(&svg, plan, cfg, scale, height)
	writeBars(&svg, plan, cfg, scale, rowTop)
	writeAxisLabels(&svg, plan, cfg, rowTop)
	writeLegend(&svg, plan, cfg)

	if cfg.Title != "" {
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="title-text">%s</text>`+"\n",
			cfg.Layout.Width/2, cfg.Layout.MarginTop/2, escapeXML(cfg.Title)))
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// axisRange widens the plan's date range so clamped bars stay inside
// the plot: a bar whose end precedes its start still occupies one
// displayed day past its start.
func axisRange(plan *models.RenderPlan) (time.Time, time.Time) {
	min, max := plan.MinStart, plan.MaxEnd
	for _, bar := range plan.Bars {
		right := bar.Start.Add(time.Duration(bar.WidthDays) * day)
		if right.After(max) {
			max = right
		}
	}
	return min, max
}

func writeGridlines(svg *strings.Builder, plan *models.RenderPlan, cfg Config, scale func(time.Time) int, height int) {
	y1 := cfg.Layout.MarginTop
	y2 := height - cfg.Layout.MarginBottom

	for _, line := range plan.Gridlines {
		x := scale(line.Date)
		dash := ""
		if line.Weight == models.GridWeekly {
			dash = ` stroke-dasharray="4,4"`
		}
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-opacity="%.2f"%s/>`+"\n",
			x, y1, x, y2, plan.GridColor, line.Opacity, dash))

		// Monthly lines double as the date axis ticks.
		if line.Weight == models.GridMonthly {
			svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="axis-text">%s</text>`+"\n",
				x, y2+cfg.Font.Size+6, line.Date.Format("Jan 2006")))
		}
	}
}

func writeBars(svg *strings.Builder, plan *models.RenderPlan, cfg Config, scale func(time.Time) int, rowTop func(int) int) {
	for _, bar := range plan.Bars {
		x := scale(bar.Start)
		width := scale(bar.Start.Add(time.Duration(bar.WidthDays)*day)) - x
		if width < 1 {
			width = 1
		}
		y := rowTop(bar.Slot) + (cfg.Layout.RowHeight-cfg.Layout.BarHeight)/2

		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#000000" fill-opacity="0.8"/>`+"\n",
			x, y, width, cfg.Layout.BarHeight, bar.Color))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" dominant-baseline="middle" class="bar-text">%s</text>`+"\n",
			scale(bar.LabelDate), y+cfg.Layout.BarHeight/2, escapeXML(bar.Label)))
	}
}

func writeAxisLabels(svg *strings.Builder, plan *models.RenderPlan, cfg Config, rowTop func(int) int) {
	for slot, name := range plan.AxisLabels {
		y := rowTop(slot) + cfg.Layout.RowHeight/2
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" dominant-baseline="middle" class="axis-text">%s</text>`+"\n",
			cfg.Layout.MarginLeft-8, y, escapeXML(name)))
	}
}

func writeLegend(svg *strings.Builder, plan *models.RenderPlan, cfg Config) {
	swatch := cfg.Font.Size
	x := cfg.Layout.Width - cfg.Layout.MarginRight
	for i := len(plan.Legend) - 1; i >= 0; i-- {
		entry := plan.Legend[i]
		// Entries grow leftwards from the right margin.
		labelWidth := estimateTextWidth(entry.Phase, cfg.Font.Size)
		x -= labelWidth + swatch + 16
		y := cfg.Layout.MarginTop - swatch - 4

		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			x, y, swatch, swatch, entry.Color))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" dominant-baseline="middle" class="axis-text">%s</text>`+"\n",
			x+swatch+4, y+swatch/2, escapeXML(entry.Phase)))
	}
}

// estimateTextWidth estimates the width of text in pixels based on character count
func estimateTextWidth(text string, fontSize int) int {
	// Rough estimation: average character width is about 0.6 * font size
	avgCharWidth := float64(fontSize) * 0.6
	return int(avgCharWidth * float64(len(text)))
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

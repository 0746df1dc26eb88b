package view

import (
	"fmt"
	"strconv"

	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/render/cmdlist"
	"github.com/dged-editor/dged/internal/textstore"
)

const (
	modelineBgColor        = 8
	lineNumberBgColor      = 8
	lineNumberFgActive     = 15
	lineNumberFgInactive   = 7
	selectionBgColor       = 5
	lineNumberTrailingGap  = 1
	lineNumberDigitPadding = 2
)

// Update runs the view-update pipeline against parent: it fires the
// buffer's per-frame update hooks, clamps dot, draws the modeline,
// recenters scroll, draws line numbers, marks the active selection, and
// embeds a nested command list holding the buffer's visible text. width
// and height are the window's full cell dimensions, including the
// modeline row if one is present.
func (v *View) Update(parent *cmdlist.List, arena *cmdlist.Arena, originX, originY, width, height, tabWidth int, showWhitespace bool) {
	results := v.Buf.Update()

	hookMargin := 0
	var override buffer.LineRenderFunc
	for _, r := range results {
		if r.Margin > hookMargin {
			hookMargin = r.Margin
		}
		if r.Render != nil {
			override = r.Render
		}
	}

	v.clampDot()

	textHeight := height
	if v.Modeline != nil {
		textHeight--
	}
	if textHeight < 0 {
		textHeight = 0
	}

	v.renderModeline(parent, width, height)

	fringe := hookMargin
	if v.LineNumbers {
		fringe += v.lineNumberWidth()
	}
	v.FringeWidth = fringe

	v.recenterScroll(textHeight, width-fringe, tabWidth)

	if v.LineNumbers {
		v.renderLineNumbers(parent, textHeight)
	}

	if v.markSet {
		if region := v.Region(); region.HasSize() {
			v.Buf.AddProperty(textstore.Span{
				Begin:    region.Begin,
				End:      region.End,
				Property: textstore.NewColorProperty(textstore.ColorProperty{Bg: textstore.IndexedColor(selectionBgColor)}),
			})
		}
	}

	nested := cmdlist.NewList(arena, originX+v.FringeWidth, originY, v.Buf.Name, 0)
	nested.SetShowWhitespace(showWhitespace)
	v.renderLines(nested, override, tabWidth, width-v.FringeWidth, textHeight)
	parent.DrawList(nested)

	v.Buf.ClearProperties()
}

func (v *View) renderModeline(parent *cmdlist.List, width, height int) {
	if v.Modeline == nil || height <= 0 {
		return
	}
	mark := ""
	if v.Buf.Modified() {
		mark = " [+]"
	}
	text := fmt.Sprintf(" %s%s  %d:%d", v.Buf.Name, mark, v.Dot.Line+1, v.Dot.Col+1)
	data := []byte(text)
	if len(data) > width {
		data = data[:width]
	}
	v.Modeline.Text = data

	row := height - 1
	parent.PushFormat(cmdlist.BgFragment(textstore.IndexedColor(modelineBgColor)))
	parent.DrawText(0, row, data)
	if pad := width - len(data); pad > 0 {
		parent.DrawRepeated(len(data), row, ' ', pad)
	}
	parent.ClearFormat()
}

func (v *View) recenterScroll(height, width, tabWidth int) {
	if height <= 0 {
		height = 1
	}
	if v.Dot.Line < v.ScrollLine || v.Dot.Line >= v.ScrollLine+height {
		v.ScrollLine = v.Dot.Line - height/2
		if v.ScrollLine < 0 {
			v.ScrollLine = 0
		}
	}

	if width <= 0 {
		width = 1
	}
	col := v.rawVisualColumn(tabWidth)
	if col < v.ScrollCol || col >= v.ScrollCol+width {
		v.ScrollCol = col - width/2
		if v.ScrollCol < 0 {
			v.ScrollCol = 0
		}
	}
}

func (v *View) lineNumberWidth() int {
	n := v.Buf.NumLines()
	if n < 1 {
		n = 1
	}
	return len(strconv.Itoa(n)) + lineNumberDigitPadding
}

func (v *View) renderLineNumbers(parent *cmdlist.List, height int) {
	width := v.lineNumberWidth()
	for row := 0; row < height; row++ {
		lineIdx := v.ScrollLine + row
		if lineIdx >= v.Buf.NumLines() {
			break
		}
		fg := textstore.IndexedColor(lineNumberFgInactive)
		if lineIdx == v.Dot.Line {
			fg = textstore.IndexedColor(lineNumberFgActive)
		}
		parent.ClearFormat()
		parent.PushFormat(cmdlist.BgFragment(textstore.IndexedColor(lineNumberBgColor)))
		parent.PushFormat(cmdlist.FgFragment(fg))
		text := fmt.Sprintf("%*d ", width-lineNumberTrailingGap, lineIdx+1)
		parent.DrawText(0, row, []byte(text))
	}
	parent.ClearFormat()
}

func (v *View) renderLines(list *cmdlist.List, override buffer.LineRenderFunc, tabWidth, width, height int) {
	if width <= 0 {
		width = 1
	}
	for row := 0; row < height; row++ {
		lineIdx := v.ScrollLine + row
		if lineIdx >= v.Buf.NumLines() {
			break
		}
		v.renderLine(list, lineIdx, row, override, tabWidth, width)
	}
}

// renderLine draws one line, split into runs of uniform color so each run
// becomes one push-format/draw-text/clear-format group. Tabs are expanded
// to spaces up front so every subsequent column index is a plain cell
// count, matching rawVisualColumn's accounting.
func (v *View) renderLine(list *cmdlist.List, lineIdx, row int, override buffer.LineRenderFunc, tabWidth, width int) {
	var raw []byte
	if override != nil {
		raw = override(lineIdx)
	} else {
		raw = v.Buf.Line(lineIdx).Bytes
	}
	if len(raw) == 0 {
		return
	}

	runs := v.colorRuns(lineIdx, raw, tabWidth)
	col := 0
	for _, run := range runs {
		expanded := run.bytes
		start, end := col, col+len(expanded)
		col = end

		if end <= v.ScrollCol {
			continue
		}
		if start < v.ScrollCol {
			expanded = expanded[v.ScrollCol-start:]
			start = v.ScrollCol
		}
		if start-v.ScrollCol >= width {
			break
		}
		if end-v.ScrollCol > width {
			expanded = expanded[:width-(start-v.ScrollCol)]
		}
		if len(expanded) == 0 {
			continue
		}

		if run.fg != "" || run.bg != "" {
			list.ClearFormat()
			list.PushFormat(run.bg)
			list.PushFormat(run.fg)
		}
		list.DrawText(start-v.ScrollCol, row, expanded)
		if run.fg != "" || run.bg != "" {
			list.ClearFormat()
		}
	}
}

type colorRun struct {
	bytes  []byte
	fg, bg string
}

// colorRuns walks raw's codepoints, expanding each tab to tabWidth cells
// (matching rawVisualColumn's accounting exactly, so cursor placement and
// drawn columns never disagree), and groups consecutive codepoints sharing
// the same text-property color into one run.
func (v *View) colorRuns(lineIdx int, raw []byte, tabWidth int) []colorRun {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	var runs []colorRun
	var cur colorRun
	started := false
	codepointCol := 0
	flush := func() {
		if len(cur.bytes) > 0 {
			runs = append(runs, cur)
		}
		cur = colorRun{}
	}

	for _, r := range string(raw) {
		fg, bg := v.colorFragmentsAt(textstore.Location{Line: lineIdx, Col: codepointCol})
		if !started {
			cur.fg, cur.bg = fg, bg
			started = true
		} else if fg != cur.fg || bg != cur.bg {
			flush()
			cur.fg, cur.bg = fg, bg
		}

		if r == '\t' {
			for i := 0; i < tabWidth; i++ {
				cur.bytes = append(cur.bytes, ' ')
			}
		} else {
			cur.bytes = append(cur.bytes, []byte(string(r))...)
		}
		codepointCol++
	}
	flush()
	return runs
}

func (v *View) colorFragmentsAt(loc textstore.Location) (fg, bg string) {
	for _, sp := range v.Buf.PropertiesAt(loc) {
		if sp.Property.Kind != textstore.PropertyKindColor {
			continue
		}
		if f := cmdlist.FgFragment(sp.Property.Color.Fg); f != "" {
			fg = f
		}
		if b := cmdlist.BgFragment(sp.Property.Color.Bg); b != "" {
			bg = b
		}
	}
	return fg, bg
}

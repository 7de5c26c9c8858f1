package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	FileName string

	SeriesLabel string
	LightsLabel string

	Window string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.SeriesLabel == "" {
		st.SeriesLabel = "none"
	}
	if st.LightsLabel == "" {
		st.LightsLabel = "all"
	}
	if st.Legend == "" {
		st.Legend = "(? help · m/f series · o/O lights · r reset)"
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	seriesValW := 11
	lightsValW := 7
	statusFixedW := runeWidth(fmt.Sprintf("[SERIES: %s] · [LIGHTS: %s]", strings.Repeat("X", seriesValW), strings.Repeat("X", lightsValW)))

	rightPlain := truncatePlain(" "+st.Window, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := clamp(leftW/4, 12, 36)
	statusColW := statusFixedW
	fileColW := leftW - modeColW - statusColW - 2*gapW
	if fileColW < 0 {
		deficit := -fileColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 10 {
			shrink := min(deficit, modeColW-10)
			modeColW -= shrink
		}
		fileColW = leftW - modeColW - statusColW - 2*gapW
		if fileColW < 0 {
			modeColW = max(0, modeColW+fileColW)
			fileColW = 0
		}
	}

	modeText := commandLabel(st.Mode)
	modePillW := modeColW
	if runeWidth(modeText) <= max(0, modeColW-2) {
		modePillW = runeWidth(modeText) + 2
	}
	if slack := modeColW - modePillW; slack > 0 {
		modeColW = modePillW
		fileColW += slack
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	statusSeg := renderFilterSegment(statusColW, st, styles, seriesValW, lightsValW)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + statusSeg
	if actual := modeColW + fileColW + statusColW + 2*gapW; actual < leftW {
		left += strings.Repeat(" ", leftW-actual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runeWidth(legendPlain))

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(commandLabel(st.Mode), max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no source)"
	}
	remaining := colW
	filePlain := truncatePlain("▸ "+name, remaining)
	remaining -= runeWidth(filePlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); remaining > 0 && input != "" {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runeWidth(inputPlain)
	}

	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + pad
}

func renderFilterSegment(colW int, st FooterState, styles FooterStyles, seriesValW, lightsValW int) string {
	if colW <= 0 {
		return ""
	}
	series := truncatePlain(strings.TrimSpace(st.SeriesLabel), seriesValW)
	lights := truncatePlain(strings.TrimSpace(st.LightsLabel), lightsValW)

	plain := fmt.Sprintf("[SERIES: %s] · [LIGHTS: %s]", series, lights)
	plain = padRightPlain(truncatePlain(plain, colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdLine:
		return "COMMAND"
	case CmdZoomWindow:
		return "WINDOW"
	default:
		return "NORMAL"
	}
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("%s%d;2;%d;%d;%dm", termenv.CSI, code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

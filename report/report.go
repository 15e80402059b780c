// Package report renders a grading.Report on the console.
//
// Tables are drawn with lipgloss/table. On a terminal the header and the
// score summary are colored and borders are rounded; anywhere else (pipes,
// files, NO_COLOR) the output is plain ASCII so that it diffs cleanly.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/grading"
)

// Rule separates the sections of a student's output.
const Rule = "----------------------------------------"

// wrapWidth is the path length × state width above which best-path states
// are printed one per line.
const wrapWidth = 100

var (
	colorHeader = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorTotal  = lipgloss.Color("#2CD7C7")
	colorWarn   = lipgloss.Color("#F4D03F")
)

// Printer writes reports to an io.Writer.
type Printer struct {
	w      io.Writer
	styled bool
	err    error

	header lipgloss.Style
	cell   lipgloss.Style
	total  lipgloss.Style
	warn   lipgloss.Style
}

// New returns a Printer; styled selects colors and rounded borders.
func New(w io.Writer, styled bool) *Printer {
	p := &Printer{w: w, styled: styled}
	p.header = lipgloss.NewStyle().Padding(0, 1)
	p.cell = lipgloss.NewStyle().Padding(0, 1)
	p.total = lipgloss.NewStyle()
	p.warn = lipgloss.NewStyle()
	if styled {
		p.header = p.header.Bold(true).Foreground(colorHeader)
		p.total = p.total.Bold(true).Foreground(colorTotal)
		p.warn = p.warn.Foreground(colorWarn)
	}

	return p
}

// ForFile returns a Printer for f, styled only when f is a terminal and
// color was not disabled.
func ForFile(f *os.File, noColor bool) *Printer {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return New(f, tty && !noColor && os.Getenv("NO_COLOR") == "")
}

// Report writes rep in full: per-student results, per-problem scores,
// heuristic comments and the final summary. It returns the first write
// error.
func (p *Printer) Report(rep *grading.Report) error {
	for _, sr := range rep.Students {
		p.Student(sr)
	}
	for _, sr := range rep.Students {
		p.Scores(sr)
	}
	for _, sr := range rep.Students {
		p.Comments(sr)
	}
	p.Summary(rep)
	return p.err
}

// Student writes the compile check, the results table and the best paths
// of one student.
func (p *Printer) Student(sr *grading.StudentReport) {
	for _, d := range sr.Defects {
		p.println(p.warn.Render(d))
	}
	p.println(sr.SearchesLine)
	p.println(sr.MethodsLine)
	p.println(Rule)
	if sr.Comparison == nil {
		return
	}
	for _, m := range sr.Malformed {
		p.println(p.warn.Render(m))
	}

	c := sr.Comparison
	rows := make([][]string, 0, len(c.Methods)+1)
	rows = append(rows, c.Header[1])
	for i, m := range c.Methods {
		row := make([]string, 0, len(c.Problems)+1)
		row = append(row, m.Name)
		for _, run := range c.Runs[i] {
			row = append(row, Cell(run))
		}
		rows = append(rows, row)
	}
	p.println(p.table(c.Header[0], rows))
	p.println(Rule)
	for j, prob := range c.Problems {
		p.println(BestPath(prob, c.Best[j]))
	}
	p.println(Rule)
}

// Scores writes the per-problem score tables of one student.
func (p *Printer) Scores(sr *grading.StudentReport) {
	if sr.Comparison == nil {
		return
	}
	p.println("Scores for: " + sr.Name)
	for _, ps := range sr.Scores {
		rows := make([][]string, 0, len(ps.Rows)+1)
		for _, r := range ps.Rows {
			rows = append(rows, []string{fmt.Sprintf("%s, %s:", r.Method, ps.Label), FloatList(r.Scores.List())})
		}
		if len(ps.Rows) > 1 {
			rows = append(rows, []string{ps.Label + " summary:", FloatList(ps.Summary.List())})
		}
		p.println(p.table(nil, rows))
		if len(ps.Rows) > 1 {
			p.println("")
		}
	}
}

// Comments writes the heuristic remarks collected for one student.
func (p *Printer) Comments(sr *grading.StudentReport) {
	if len(sr.Comments) == 0 {
		return
	}
	p.println("Comments for: " + sr.Name)
	for _, c := range sr.Comments {
		p.println("  " + c)
	}
}

// Summary writes the overall score list and the capped total.
func (p *Printer) Summary(rep *grading.Report) {
	p.println(fmt.Sprintf("%s summary: %s", rep.Name, IntList(rep.Overall.Rounded())))
	p.println(p.total.Render(fmt.Sprintf("%s   total: %d", rep.Name, rep.Total())))
}

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }

func (p *Printer) table(headers []string, rows [][]string) string {
	border := lipgloss.ASCIIBorder()
	if p.styled {
		border = lipgloss.RoundedBorder()
	}
	t := table.New().
		Border(border).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}

			return p.cell
		}).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	if !p.styled {
		t = t.BorderStyle(lipgloss.NewStyle())
	}

	return t.String()
}

func (p *Printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

// Cell renders one results-table entry as (<stats>, cost).
func Cell(run *grading.Run) string {
	stats := "<none>"
	if run.Stats != nil {
		stats = run.Stats.String()
	}
	return fmt.Sprintf("(%s, %s)", stats, FormatCost(run.Cost))
}

// FormatCost prints a path cost, "inf" for failed runs.
func FormatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "inf"
	}
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// BestPath renders the states from the root to best, pretty-printed by p.
// States are separated by a space, or by newlines when the path length times
// the width of the goal state exceeds wrapWidth.
func BestPath(p core.Problem, best *core.Node) string {
	var b strings.Builder
	b.WriteString("Best Path for " + core.Label(p) + ": ")
	if best == nil {
		return b.String()
	}
	path := best.Path()
	sep := " "
	if len(path)*utf8.RuneCountInString(core.Pretty(p, best.State)) > wrapWidth {
		sep = "\n"
	}
	for _, n := range path {
		b.WriteString(sep)
		b.WriteString(core.Pretty(p, n.State))
	}

	return b.String()
}

// FloatList renders scores as [a, b, ...] with the shortest exact form.
func FloatList(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IntList renders rounded scores as [a, b, ...].
func IntList(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

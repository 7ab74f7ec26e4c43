// Coplot provides convenience builders for common scientific chart types
// on top of gonum.org/v1/plot: filled contour plots, correlation scatter
// plots with optional fit lines or overlay curves, histograms with vertical
// reference lines, 2-D heatmaps and a figure splitting utility that turns a
// single plot into a grid of linked "broken axis" panels.
//
//
// Chart Builders
//
// Each chart type is a struct created by its NewXxx constructor which
// installs the default settings. The exported fields are then adjusted as
// needed and Draw produces a Figure:
//      h := coplot.NewHistogram(values)
//      h.BinCount = 25
//      h.Color = "#cc3311"
//      fig, err := h.Draw()
//
// If FileName is set on a builder, Draw also exports the figure. The file
// format is taken from FileFormat (default "png"); png, jpg, tif, pdf, svg
// and eps are understood.
//
//
// Figures and Artists
//
// A Figure owns one or more Axes; an Axes couples a gonum *plot.Plot with
// the list of Artists that have been added to it. Artists are the drawable
// elements of a plot: point sets, lines, vertical rules, text annotations,
// histogram bars and color grids. Keeping this list around is what allows
// Split to enumerate the drawables of a finished figure and clone them onto
// the panels of a broken-axis grid.
package coplot

/*
 * population.go, part of lmpdata.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
package chemplot

import (
	"fmt"

	"github.com/rmera/lmpdata/lammps"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicBarPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//barPlot plots the population pop as bars, and saves it to filename.
//The format of the file is given by its extension.
func barPlot(pop map[int]int, names func(id int) string, title, xlabel, filename string, colorkey int) error {
	if len(pop) == 0 {
		return fmt.Errorf("chemplot: nothing to plot for %q", title)
	}
	p := basicBarPlot(title, xlabel)
	ids := lammps.SortedIDs(pop)
	vals := make(plotter.Values, len(ids))
	labels := make([]string, len(ids))
	for i, id := range ids {
		vals[i] = float64(pop[id])
		labels[i] = names(id)
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = colors(colorkey, len(lammps.Categories))
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	return p.Save(vg.Length(len(ids))*vg.Centimeter+8*vg.Centimeter, 10*vg.Centimeter, filename)
}

//TypePopulation plots the number of atoms of each atom type in D as a bar chart,
//and saves it to filename. The atom type labels are used, when available.
func TypePopulation(D *lammps.Data, title, filename string) error {
	names := func(id int) string {
		if id > 0 && id <= len(D.TypeLabels) {
			return fmt.Sprintf("%d (%s)", id, D.TypeLabels[id-1])
		}
		return fmt.Sprint(id)
	}
	return barPlot(D.TypePopulation(), names, title, "Atom type", filename, 0)
}

//TermPopulation plots the number of terms of each type in the bonded category cat
//as a bar chart, and saves it to filename.
func TermPopulation(D *lammps.Data, cat lammps.Category, title, filename string) error {
	return barPlot(D.TermPopulation(cat), func(id int) string { return fmt.Sprint(id) }, title, fmt.Sprintf("%s type", cat), filename, int(cat))
}

// SPDX-License-Identifier: MIT
package textio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/weatherpath/network"
)

// Save writes every road with a finite normal weight, origins and
// destinations in index order, one line per road.
func Save(w io.Writer, g *network.Network) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if math.IsInf(e.Weights.Normal, 1) {
			continue
		}
		if err := writeRoad(bw, e); err != nil {
			return fmt.Errorf("textio: save: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: save: %w", err)
	}

	return nil
}

// SaveFile writes g to path, truncating any existing file.
func SaveFile(path string, g *network.Network) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("textio: close %s: %w", path, cerr)
		}
	}()

	return Save(f, g)
}

func writeRoad(w io.Writer, e network.Edge) error {
	_, err := fmt.Fprintf(w, "%s %s %s %s %s %s\n", e.From, e.To,
		formatWeight(e.Weights.Normal), formatWeight(e.Weights.Rain),
		formatWeight(e.Weights.Snow), formatWeight(e.Weights.Storm))

	return err
}

// formatWeight prints one fractional digit, or "inf" for a closed regime.
func formatWeight(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}

	return fmt.Sprintf("%.1f", v)
}

// sampleRoads is the bundled South American network.
var sampleRoads = []network.Edge{
	{From: "BuenosAires", To: "SaoPaulo", Weights: network.Weights{Normal: 10, Rain: 15, Snow: 20, Storm: 50}},
	{From: "BuenosAires", To: "Lima", Weights: network.Weights{Normal: 15, Rain: 20, Snow: 30, Storm: 70}},
	{From: "Lima", To: "Quito", Weights: network.Weights{Normal: 10, Rain: 12, Snow: 15, Storm: 20}},
	{From: "SaoPaulo", To: "Lima", Weights: network.Weights{Normal: 8, Rain: 10, Snow: 12, Storm: 25}},
	{From: "SaoPaulo", To: "Quito", Weights: network.Weights{Normal: 20, Rain: 25, Snow: 30, Storm: 60}},
	{From: "Quito", To: "Bogota", Weights: network.Weights{Normal: 5, Rain: 8, Snow: 10, Storm: 15}},
	{From: "Lima", To: "Bogota", Weights: network.Weights{Normal: 12, Rain: 15, Snow: 18, Storm: 35}},
	{From: "Bogota", To: "Caracas", Weights: network.Weights{Normal: 8, Rain: 10, Snow: 12, Storm: 20}},
	{From: "SaoPaulo", To: "Caracas", Weights: network.Weights{Normal: 25, Rain: 30, Snow: 35, Storm: 70}},
	{From: "BuenosAires", To: "Montevideo", Weights: network.Weights{Normal: 3, Rain: 4, Snow: 5, Storm: 8}},
	{From: "Montevideo", To: "SaoPaulo", Weights: network.Weights{Normal: 12, Rain: 15, Snow: 18, Storm: 30}},
}

// WriteSample writes the eleven-road sample in file order.
func WriteSample(w io.Writer) error {
	var sb strings.Builder
	for _, e := range sampleRoads {
		if err := writeRoad(&sb, e); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("textio: sample: %w", err)
	}

	return nil
}

// WriteSampleFile creates path and writes the sample into it.
func WriteSampleFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("textio: close %s: %w", path, cerr)
		}
	}()

	return WriteSample(f)
}

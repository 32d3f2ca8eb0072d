/* Copyright (C) 2026 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "image/color"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastamask"
import   "github.com/pbenner/fastamask/lib/config"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  config.Config
  Length int
  Title  string
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importConfig(filename string) Config {
  if filename == "" {
    return Config{Config: config.Default()}
  }
  c, err := config.Load(filename)
  if err != nil {
    log.Fatal(err)
  }
  return Config{Config: c}
}

func importSequence(config Config, filename string) Sequence {
  s := Sequence{}
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportSequence(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

func importMask(config Config, filename, format string) Mask {
  PrintStderr(config, 1, "Reading mask file `%s'... ", filename)
  mask, diagnostics, err := ImportMask(filename, format, config.Length)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  for _, d := range diagnostics {
    PrintStderr(config, 1, "%s: %v\n", filename, d)
  }
  if err := diagnostics.Check(config.MaxMalformed); err != nil {
    log.Fatal(err)
  }
  return mask
}

/* -------------------------------------------------------------------------- */

func saveCoveragePlot(config Config, filename string, coverage []float64) {
  xy := make(plotter.XYs, len(coverage))
  for i := 0; i < len(coverage); i++ {
    xy[i].X = float64(i*config.BinSize)
    xy[i].Y = coverage[i]
  }
  p := plot.New()
  p.Title.Text = config.Title
  p.X.Label.Text = "position"
  p.Y.Label.Text = "masked fraction"
  p.Y.Min = 0.0
  p.Y.Max = 1.0

  l, err := plotter.NewLine(xy)
  if err != nil {
    log.Fatal(err)
  }
  l.StepStyle = plotter.PostStep
  l.FillColor = color.RGBA{R: 196, G: 64, B: 64, A: 128}
  p.Add(l)

  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote coverage plot to `%s'\n", filename)
}

func maskPlot(config Config, format, filenameMask, filenameOut string) {
  mask := importMask(config, filenameMask, format)
  if mask.Len() == 0 {
    log.Fatalf("mask `%s' is empty", filenameMask)
  }
  coverage, err := MaskCoverage(mask, config.BinSize)
  if err != nil {
    log.Fatal(err)
  }
  saveCoveragePlot(config, filenameOut, coverage)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  options := getopt.New()

  optConfig  := options. StringLong("config",   0 , "", "YAML configuration file")
  optLength  := options.    IntLong("length",   0 , -1, "length of the masked sequence")
  optFasta   := options. StringLong("fasta",    0 , "", "take the length from this fasta file")
  optBinSize := options.    IntLong("bin-size", 0 , 10000, "number of positions per bin [default: 10000]")
  optTitle   := options. StringLong("title",    0 , "", "plot title")
  optVerbose := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',     "print help")

  options.SetParameters("<fasta|position|range> <MASK> <OUTPUT.{pdf,png,svg}>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config := importConfig(*optConfig)

  if options.IsSet("bin-size") {
    config.BinSize = *optBinSize
  }
  if options.IsSet("verbose") {
    config.Verbose = *optVerbose
  }
  if err := config.Validate(); err != nil {
    log.Fatal(err)
  }
  config.Length = *optLength
  config.Title  = *optTitle

  if *optFasta != "" && !options.IsSet("length") {
    sequence := importSequence(config, *optFasta)
    config.Length = sequence.Length()
    if config.Title == "" {
      config.Title = sequence.Name()
    }
  }
  format := options.Args()[0]
  if format != "fasta" && config.Length < 0 {
    log.Fatalf("format `%s' requires --length or --fasta", format)
  }
  maskPlot(config, format, options.Args()[1], options.Args()[2])
}

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

import   "bufio"
import   "fmt"
import   "io"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/fatih/color"
import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastamask"
import   "github.com/pbenner/fastamask/lib/config"
import   "github.com/pbenner/fastamask/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  config.Config
  Length    int
  Positions bool
}

type result struct {
  filename    string
  comparison  MaskComparison
  diagnostics Diagnostics
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

func printDiagnostics(config Config, filename string, diagnostics Diagnostics) {
  warn := color.New(color.FgYellow)
  if !config.Color {
    warn.DisableColor()
  }
  for _, d := range diagnostics {
    warn.Fprint(os.Stderr, "warning: ")
    fmt.Fprintf(os.Stderr, "%s: %v\n", filename, d)
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

func importMask(config Config, filename, format string) (Mask, Diagnostics) {
  mask, diagnostics, err := ImportMask(filename, format, config.Length)
  if err != nil {
    log.Fatalf("reading mask `%s' failed: %v", filename, err)
  }
  if err := diagnostics.Check(config.MaxMalformed); err != nil {
    log.Fatalf("%s: %v", filename, err)
  }
  return mask, diagnostics
}

/* -------------------------------------------------------------------------- */

func formatPositions(positions []int) string {
  s := make([]string, len(positions))
  for i, p := range positions {
    s[i] = strconv.Itoa(p)
  }
  return strings.Join(s, ",")
}

func writeResults(config Config, writer io.Writer, results []result) error {
  w := bufio.NewWriter(writer)
  fmt.Fprintf(w, "mask\tonly_reference\tonly_mask\teither\n")
  for _, r := range results {
    fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.filename,
      len(r.comparison.OnlyFirst),
      len(r.comparison.OnlySecond),
      len(r.comparison.Either))
    if config.Positions {
      fmt.Fprintf(w, "#%s\tonly_reference\t%s\n", r.filename, formatPositions(r.comparison.OnlyFirst))
      fmt.Fprintf(w, "#%s\tonly_mask\t%s\n",      r.filename, formatPositions(r.comparison.OnlySecond))
    }
  }
  return w.Flush()
}

/* -------------------------------------------------------------------------- */

func maskCompare(config Config, format, filenameRef string, filenames []string) {
  PrintStderr(config, 1, "Reading reference mask `%s'... ", filenameRef)
  reference, diagnostics := importMask(config, filenameRef, format)
  PrintStderr(config, 1, "done\n")
  printDiagnostics(config, filenameRef, diagnostics)

  pool    := threadpool.New(config.Threads, 100*config.Threads)
  results := make([]result, len(filenames))

  var bar *progress.Progress
  if config.Verbose >= 1 {
    bar = progress.New(os.Stderr, len(filenames), 100)
  } else {
    bar = progress.New(nil, len(filenames), 100)
  }
  if err := pool.RangeJob(0, len(filenames), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    mask, diagnostics := importMask(config, filenames[i], format)
    results[i] = result{filenames[i], CompareMasks(reference, mask), diagnostics}
    bar.Increment()
    return nil
  }); err != nil {
    log.Fatal(err)
  }
  for _, r := range results {
    printDiagnostics(config, r.filename, r.diagnostics)
  }
  if err := writeResults(config, os.Stdout, results); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  options := getopt.New()

  optConfig    := options. StringLong("config",        0 , "", "YAML configuration file")
  optLength    := options.    IntLong("length",        0 , -1, "length of the masked sequence")
  optFasta     := options. StringLong("fasta",         0 , "", "take the length from this fasta file")
  optThreads   := options.    IntLong("threads",       0 ,  1, "number of threads [default: 1]")
  optPositions := options.   BoolLong("positions",     0 ,     "print differing positions")
  optNoColor   := options.   BoolLong("no-color",      0 ,     "do not color warnings")
  optVerbose   := options.CounterLong("verbose",      'v',     "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",         'h',     "print help")

  options.SetParameters("<fasta|position|range> <REFERENCE> <MASK>...")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config := importConfig(*optConfig)

  if options.IsSet("threads") {
    config.Threads = *optThreads
  }
  if options.IsSet("verbose") {
    config.Verbose = *optVerbose
  }
  if *optNoColor {
    config.Color = false
  }
  if err := config.Validate(); err != nil {
    log.Fatal(err)
  }
  config.Length    = *optLength
  config.Positions = *optPositions

  if *optFasta != "" && !options.IsSet("length") {
    config.Length = importSequence(config, *optFasta).Length()
  }
  format := options.Args()[0]
  if _, err := ParseMaskFormat(format); err != nil {
    log.Fatal(err)
  }
  if format != "fasta" && config.Length < 0 {
    log.Fatalf("format `%s' requires --length or --fasta", format)
  }
  maskCompare(config, format, options.Args()[1], options.Args()[2:])
}

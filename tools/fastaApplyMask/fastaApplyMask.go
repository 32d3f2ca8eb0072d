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
import   "log"
import   "os"
import   "path/filepath"
import   "strconv"

import   "github.com/fatih/color"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastamask"
import   "github.com/pbenner/fastamask/lib/config"

/* -------------------------------------------------------------------------- */

type Config struct {
  config.Config
  Bed string
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

func importMaskLines(config Config, filename string) []string {
  PrintStderr(config, 1, "Reading mask file `%s'... ", filename)
  lines, err := ImportMaskLines(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return lines
}

func exportSequence(config Config, sequence Sequence, filename string, compress bool) {
  PrintStderr(config, 1, "Writing fasta file `%s'... ", filename)
  if err := sequence.ExportSequence(filename, compress); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  fmt.Fprintf(os.Stderr, "file %s created.\n", filename)
}

func exportBed3(config Config, ranges IntervalList, seqname, filename string) {
  PrintStderr(config, 1, "Writing bed file `%s'... ", filename)
  f, err := os.Create(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  defer f.Close()
  if err := ranges.WriteBed3(f, seqname); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func fastaApplyMask(config Config, filenameMask, format, filenameFasta string, compress, printRanges bool) {
  sequence := importSequence(config, filenameFasta)
  lines    := importMaskLines(config, filenameMask)

  options := DefaultTransformOptions()
  options.Compress     = compress
  options.ReportRanges = printRanges || config.Bed != ""
  options.Symbol       = config.SymbolByte()
  options.LimitMalformed = config.MaxMalformed >= 0
  options.MaxMalformed   = config.MaxMalformed

  result, err := TransformSequence(lines, format, sequence, options)
  printDiagnostics(config, filenameMask, result.Diagnostics)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Masked %d of %d positions\n", result.Mask.Count(), result.Sequence.Length())

  filenameOut := filepath.Join(config.OutputDir, MaskedFilename(filenameFasta, result.Compress))
  exportSequence(config, result.Sequence, filenameOut, result.Compress)

  if config.Bed != "" {
    exportBed3(config, result.Ranges, sequence.Name(), config.Bed)
  }
  if printRanges {
    if err := result.Ranges.WriteRanges(os.Stdout); err != nil {
      log.Fatal(err)
    }
  }
}

/* -------------------------------------------------------------------------- */

func parseTruthy(options *getopt.Set, name, token string) bool {
  v, err := ParseTruthy(token)
  if err != nil {
    fmt.Fprintf(os.Stderr, "%s: %v\n\n", name, err)
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  return v
}

func main() {
  log.SetFlags(0)

  options := getopt.New()

  optConfig       := options. StringLong("config",        0 , "",  "YAML configuration file")
  optOutputDir    := options. StringLong("output-dir",    0 , ".", "directory for the masked fasta file [default: .]")
  optSymbol       := options. StringLong("symbol",        0 , "N", "replacement for masked positions [default: N]")
  optMaxMalformed := options.    IntLong("max-malformed", 0 , -1,  "abort if more mask lines are malformed [default: no limit]")
  optBed          := options. StringLong("bed",           0 , "",  "also write masked ranges as bed file")
  optNoColor      := options.   BoolLong("no-color",      0 ,      "do not color warnings")
  optVerbose      := options.CounterLong("verbose",      'v',      "verbose level [-v or -vv]")
  optHelp         := options.   BoolLong("help",         'h',      "print help")

  options.SetParameters("<MASK> <fasta|position|range> <SEQUENCE.fa> <USE_GZIP> <PRINT_MASK_RANGES>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 5 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config := importConfig(*optConfig)

  if options.IsSet("output-dir") {
    config.OutputDir = *optOutputDir
  }
  if options.IsSet("symbol") {
    config.Symbol = *optSymbol
  }
  if options.IsSet("max-malformed") {
    config.MaxMalformed = *optMaxMalformed
  }
  if options.IsSet("verbose") {
    config.Verbose = *optVerbose
  }
  if *optNoColor {
    config.Color = false
  }
  config.Bed = *optBed

  if err := config.Validate(); err != nil {
    log.Fatal(err)
  }
  if _, err := ParseMaskFormat(options.Args()[1]); err != nil {
    log.Fatal(err)
  }
  compress    := parseTruthy(options, "USE_GZIP",          options.Args()[3])
  printRanges := parseTruthy(options, "PRINT_MASK_RANGES", options.Args()[4])

  PrintStderr(config, 2, "Using symbol %s, max-malformed %s\n",
    strconv.Quote(config.Symbol), strconv.Itoa(config.MaxMalformed))

  fastaApplyMask(config, options.Args()[0], options.Args()[1], options.Args()[2], compress, printRanges)
}

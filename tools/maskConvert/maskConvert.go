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
import   "io"
import   "log"
import   "os"

import   "github.com/fatih/color"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastamask"
import   "github.com/pbenner/fastamask/lib/config"

/* -------------------------------------------------------------------------- */

type Config struct {
  config.Config
  Length  int
  Header  string
  Seqname string
  Width   int
  Gzip    bool
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

func importMask(config Config, filename, format string) Mask {
  PrintStderr(config, 1, "Reading mask file `%s'... ", filename)
  mask, diagnostics, err := ImportMask(filename, format, config.Length)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  printDiagnostics(config, filename, diagnostics)
  if err := diagnostics.Check(config.MaxMalformed); err != nil {
    log.Fatal(err)
  }
  return mask
}

/* -------------------------------------------------------------------------- */

func writeMask(config Config, writer io.Writer, mask Mask, format string) error {
  if format == "bed" {
    return CompressMask(mask).WriteBed3(writer, config.Seqname)
  }
  f, err := ParseMaskFormat(format)
  if err != nil {
    return err
  }
  return WriteMask(writer, mask, f, config.Header, config.Width)
}

func exportMask(config Config, mask Mask, format, filename string) {
  if filename == "" {
    if err := writeMask(config, os.Stdout, mask, format); err != nil {
      log.Fatal(err)
    }
    return
  }
  PrintStderr(config, 1, "Writing mask file `%s'... ", filename)
  var err error
  if format == "bed" {
    err = CompressMask(mask).ExportBed3(filename, config.Seqname, config.Gzip)
  } else {
    var f MaskFormat
    if f, err = ParseMaskFormat(format); err == nil {
      err = ExportMask(filename, mask, f, config.Header, config.Width, config.Gzip)
    }
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func maskConvert(config Config, formatIn, filenameIn, formatOut, filenameOut string) {
  mask := importMask(config, filenameIn, formatIn)
  PrintStderr(config, 1, "Mask has %d positions, %d masked\n", mask.Len(), mask.Count())
  exportMask(config, mask, formatOut, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  options := getopt.New()

  optConfig  := options. StringLong("config",   0 , "",      "YAML configuration file")
  optLength  := options.    IntLong("length",   0 , -1,      "length of the masked sequence")
  optFasta   := options. StringLong("fasta",    0 , "",      "take length, header and name from this fasta file")
  optHeader  := options. StringLong("header",   0 , ">mask", "header of fasta masks [default: >mask]")
  optSeqname := options. StringLong("seqname",  0 , "seq",   "sequence name for bed output [default: seq]")
  optWidth   := options.    IntLong("width",    0 , 60,      "line width of fasta masks [default: 60]")
  optGzip    := options.   BoolLong("gzip",     0 ,          "compress output file")
  optNoColor := options.   BoolLong("no-color", 0 ,          "do not color warnings")
  optVerbose := options.CounterLong("verbose", 'v',          "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',          "print help")

  options.SetParameters("<fasta|position|range> <MASK> <fasta|position|range|bed> [OUTPUT]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 && len(options.Args()) != 4 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config := importConfig(*optConfig)

  if options.IsSet("verbose") {
    config.Verbose = *optVerbose
  }
  if *optNoColor {
    config.Color = false
  }
  config.Length  = *optLength
  config.Header  = *optHeader
  config.Seqname = *optSeqname
  config.Width   = *optWidth
  config.Gzip    = *optGzip

  if *optFasta != "" {
    sequence := importSequence(config, *optFasta)
    if !options.IsSet("length") {
      config.Length = sequence.Length()
    }
    if !options.IsSet("header") {
      config.Header = sequence.Header
    }
    if !options.IsSet("seqname") {
      config.Seqname = sequence.Name()
    }
    if !options.IsSet("width") {
      config.Width = sequence.Width
    }
  }
  formatIn := options.Args()[0]
  if formatIn != "fasta" && config.Length < 0 {
    log.Fatalf("format `%s' requires --length or --fasta", formatIn)
  }
  filenameOut := ""
  if len(options.Args()) == 4 {
    filenameOut = options.Args()[3]
  }
  maskConvert(config, formatIn, options.Args()[1], options.Args()[2], filenameOut)
}

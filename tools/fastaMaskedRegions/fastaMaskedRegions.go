/* Copyright (C) 2019 Philipp Benner
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

import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastamask"

/* -------------------------------------------------------------------------- */

type Config struct {
  Bed      bool
  Compress bool
  Symbol   byte
  Verbose  int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

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

/* -------------------------------------------------------------------------- */

func exportRanges(config Config, ranges IntervalList, seqname, filename string) {
  if filename == "" {
    var err error
    if config.Bed {
      err = ranges.WriteBed3(os.Stdout, seqname)
    } else {
      err = ranges.WriteRanges(os.Stdout)
    }
    if err != nil {
      log.Fatal(err)
    }
    return
  }
  PrintStderr(config, 1, "Writing mask `%s'... ", filename)
  var err error
  if config.Bed {
    err = ranges.ExportBed3(filename, seqname, config.Compress)
  } else {
    err = ranges.ExportRanges(filename, config.Compress)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func fastaMaskedRegions(config Config, filenameFasta, filenameOutput string) {
  sequence := importSequence(config, filenameFasta)
  mask     := ExtractMask(sequence.Body, config.Symbol)
  ranges   := CompressMask(mask)

  PrintStderr(config, 1, "Found %d regions covering %d of %d positions\n", ranges.Length(), mask.Count(), mask.Len())

  exportRanges(config, ranges, sequence.Name(), filenameOutput)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}

  options := getopt.New()

  optSymbol     := options. StringLong("symbol",  0 , "N", "symbol of masked positions [default: N]")
  optBed        := options.   BoolLong("bed",     0 ,      "write bed instead of a range mask")
  optGzip       := options.   BoolLong("gzip",    0 ,      "compress output file")
  optHelp       := options.   BoolLong("help",    'h',     "print help")
  optVerbose    := options.CounterLong("verbose", 'v',     "be verbose")

  options.SetParameters("<SEQUENCE.fa> [OUTPUT]\n")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 && len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if len(*optSymbol) != 1 {
    log.Fatal("symbol must be a single character")
  }
  config.Symbol   = (*optSymbol)[0]
  config.Bed      = *optBed
  config.Compress = *optGzip
  config.Verbose  = *optVerbose

  filenameFasta  := options.Args()[0]
  filenameOutput := ""
  if len(options.Args()) == 2 {
    filenameOutput = options.Args()[1]
  }
  fastaMaskedRegions(config, filenameFasta, filenameOutput)
}

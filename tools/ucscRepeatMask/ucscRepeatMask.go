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

import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastamask"

/* -------------------------------------------------------------------------- */

type Config struct {
  Table   string
  Bed     bool
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importRepeats(config Config, genome, seqname string) IntervalList {
  PrintStderr(config, 1, "Downloading table `%s' for `%s' from UCSC... ", config.Table, genome)
  repeats, err := ImportRepeatsFromUCSC(genome, config.Table, seqname)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  PrintStderr(config, 1, "Found %d repeat regions covering %d positions\n", repeats.Length(), repeats.Count())
  return repeats
}

func exportRanges(config Config, repeats IntervalList, seqname, filename string) {
  if filename == "" {
    var err error
    if config.Bed {
      err = repeats.WriteBed3(os.Stdout, seqname)
    } else {
      err = repeats.WriteRanges(os.Stdout)
    }
    if err != nil {
      log.Fatal(err)
    }
    return
  }
  PrintStderr(config, 1, "Writing mask file `%s'... ", filename)
  f, err := os.Create(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  defer f.Close()
  if config.Bed {
    err = repeats.WriteBed3(f, seqname)
  } else {
    err = repeats.WriteRanges(f)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}

  options := getopt.New()

  optTable   := options. StringLong("table",    0 , "rmsk", "UCSC repeat table [default: rmsk]")
  optBed     := options.   BoolLong("bed",      0 ,         "write bed instead of a range mask")
  optVerbose := options.CounterLong("verbose", 'v',         "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',         "print help")

  options.SetParameters("<GENOME> <SEQNAME> [OUTPUT]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 && len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Table   = *optTable
  config.Bed     = *optBed
  config.Verbose = *optVerbose

  genome  := options.Args()[0]
  seqname := options.Args()[1]
  filenameOut := ""
  if len(options.Args()) == 3 {
    filenameOut = options.Args()[2]
  }
  repeats := importRepeats(config, genome, seqname)
  exportRanges(config, repeats, seqname, filenameOut)
}

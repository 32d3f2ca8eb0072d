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

package fastamask

/* -------------------------------------------------------------------------- */

import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Decode mask lines in the given format. The length is the length of the
// target sequence; it is ignored by the fasta format, whose mask has the
// length of its bit string. Malformed lines are skipped and reported in
// the returned diagnostics. The only error is an unknown format.
func DecodeMask(format string, lines []string, length int) (Mask, Diagnostics, error) {
  f, err := ParseMaskFormat(format)
  if err != nil {
    return Mask{}, nil, err
  }
  return f.Decode(lines, length)
}

func (format MaskFormat) Decode(lines []string, length int) (Mask, Diagnostics, error) {
  switch format {
  case FastaFormat:
    m, d := DecodeFastaMask(lines)
    return m, d, nil
  case PositionFormat:
    m, d := DecodePositionMask(lines, length)
    return m, d, nil
  case RangeFormat:
    m, d := DecodeRangeMask(lines, length)
    return m, d, nil
  default:
    return Mask{}, nil, UnsupportedFormatError{format.String()}
  }
}

/* fasta format
 * -------------------------------------------------------------------------- */

// The first line is a header and is skipped. All other lines are
// concatenated into a string of '0' and '1'. Other characters are
// reported and left unmasked.
func DecodeFastaMask(lines []string) (Mask, Diagnostics) {
  var diagnostics Diagnostics
  var bits []byte

  for i := 1; i < len(lines); i++ {
    line := strings.TrimSpace(lines[i])
    bad  := false
    for j := 0; j < len(line); j++ {
      switch line[j] {
      case '0', '1':
        bits = append(bits, line[j])
      default:
        bits = append(bits, '0')
        bad  = true
      }
    }
    if bad {
      diagnostics.add(i+1, lines[i], "mask contains characters other than 0 and 1")
    }
  }
  m := NewMask(len(bits))
  for i, c := range bits {
    if c == '1' {
      m.Set(i)
    }
  }
  return m, diagnostics
}

/* position format
 * -------------------------------------------------------------------------- */

func DecodePositionMask(lines []string, length int) (Mask, Diagnostics) {
  var diagnostics Diagnostics

  m := NewMask(length)
  for i, line := range lines {
    field := strings.TrimSpace(line)
    if field == "" {
      continue
    }
    p, err := strconv.Atoi(field)
    if err != nil {
      diagnostics.add(i+1, line, "masked position is not an integer")
      continue
    }
    if p < 0 || p >= length {
      diagnostics.add(i+1, line, "masked position is out of range")
      continue
    }
    m.Set(p)
  }
  return m, diagnostics
}

/* range format
 * -------------------------------------------------------------------------- */

func DecodeRangeMask(lines []string, length int) (Mask, Diagnostics) {
  var diagnostics Diagnostics

  m := NewMask(length)
  for i, line := range lines {
    if strings.TrimSpace(line) == "" {
      continue
    }
    r, reason := parseRangeLine(line)
    if reason != "" {
      diagnostics.add(i+1, line, reason)
      continue
    }
    if r.From < 0 || r.To >= length {
      diagnostics.add(i+1, line, "masked range is out of range")
      continue
    }
    m.SetInterval(r)
  }
  return m, diagnostics
}

func parseRangeLine(line string) (Interval, string) {
  fields := strings.Split(strings.TrimSpace(line), "\t")
  if len(fields) != 2 {
    return Interval{}, "masked range must have two tab separated fields"
  }
  from, err := strconv.Atoi(strings.TrimSpace(fields[0]))
  if err != nil {
    return Interval{}, "masked range couldn't be parsed"
  }
  to, err := strconv.Atoi(strings.TrimSpace(fields[1]))
  if err != nil {
    return Interval{}, "masked range couldn't be parsed"
  }
  if from > to {
    return Interval{}, "masked range begins after its end"
  }
  return Interval{from, to}, ""
}

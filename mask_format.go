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

// On-disk encoding of a mask.
type MaskFormat int

const (
  // header line followed by lines of '0' and '1'
  FastaFormat MaskFormat = iota
  // one 0-based position per line
  PositionFormat
  // one `begin<TAB>end' pair per line, both inclusive
  RangeFormat
)

var maskFormatNames = []string{"fasta", "position", "range"}

/* -------------------------------------------------------------------------- */

func MaskFormatNames() []string {
  r := make([]string, len(maskFormatNames))
  copy(r, maskFormatNames)
  return r
}

func ParseMaskFormat(name string) (MaskFormat, error) {
  for i, s := range maskFormatNames {
    if s == name {
      return MaskFormat(i), nil
    }
  }
  return 0, UnsupportedFormatError{name}
}

func (format MaskFormat) String() string {
  if format < 0 || int(format) >= len(maskFormatNames) {
    return "unknown"
  }
  return maskFormatNames[format]
}

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

import "bufio"
import "bytes"
import "fmt"
import "io"
import "strings"

/* import
 * -------------------------------------------------------------------------- */

func ReadMaskLines(reader io.Reader) ([]string, error) {
  return readLines(reader)
}

// Read all lines of a plain or gzipped mask file.
func ImportMaskLines(filename string) ([]string, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  return readLines(f)
}

func ImportMask(filename, format string, length int) (Mask, Diagnostics, error) {
  f, err := ParseMaskFormat(format)
  if err != nil {
    return Mask{}, nil, err
  }
  lines, err := ImportMaskLines(filename)
  if err != nil {
    return Mask{}, nil, err
  }
  return f.Decode(lines, length)
}

/* export
 * -------------------------------------------------------------------------- */

// Write a mask in the given format. Header and width are used only by the
// fasta format; a width that is not positive puts all bits on one line.
func WriteMask(writer io.Writer, mask Mask, format MaskFormat, header string, width int) error {
  switch format {
  case FastaFormat:
    if !strings.HasPrefix(header, ">") {
      header = ">" + header
    }
    s := Sequence{header, []byte(mask.String()), width}
    return s.WriteSequence(writer)
  case PositionFormat:
    w := bufio.NewWriter(writer)
    for _, p := range mask.Positions() {
      if _, err := fmt.Fprintf(w, "%d\n", p); err != nil {
        return err
      }
    }
    return w.Flush()
  case RangeFormat:
    return CompressMask(mask).WriteRanges(writer)
  default:
    return UnsupportedFormatError{format.String()}
  }
}

func ExportMask(filename string, mask Mask, format MaskFormat, header string, width int, compress bool) error {
  var buffer bytes.Buffer
  if err := WriteMask(&buffer, mask, format, header, width); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}

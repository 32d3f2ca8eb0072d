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
import "path/filepath"
import "strings"

/* -------------------------------------------------------------------------- */

// A single FASTA record. Width is the line length of the body in the
// file the sequence was read from and is used again when writing.
type Sequence struct {
  Header string
  Body   []byte
  Width  int
}

/* -------------------------------------------------------------------------- */

func NewSequence(header string, body []byte, width int) Sequence {
  if !strings.HasPrefix(header, ">") {
    header = ">" + header
  }
  return Sequence{header, body, width}
}

func (s Sequence) Length() int {
  return len(s.Body)
}

// Name of the sequence, i.e. the first word of the header.
func (s Sequence) Name() string {
  fields := strings.Fields(strings.TrimPrefix(s.Header, ">"))
  if len(fields) == 0 {
    return ""
  }
  return fields[0]
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read a FASTA file with a single record. The wrap width is the length of
// the first sequence line.
func (s *Sequence) ReadSequence(reader io.Reader) error {
  lines, err := readLines(reader)
  if err != nil {
    return err
  }
  if len(lines) == 0 {
    return fmt.Errorf("ReadSequence(): empty fasta file")
  }
  header := strings.TrimRightFunc(lines[0], isSpace)
  if !strings.HasPrefix(header, ">") {
    return fmt.Errorf("ReadSequence(): invalid fasta header `%s'", header)
  }
  width := 0
  if len(lines) > 1 {
    width = len(strings.TrimSpace(lines[1]))
  }
  var body bytes.Buffer
  for i := 1; i < len(lines); i++ {
    line := strings.TrimSpace(lines[i])
    if strings.HasPrefix(line, ">") {
      return fmt.Errorf("ReadSequence(): multiple records not supported (line %d)", i+1)
    }
    body.WriteString(line)
  }
  *s = Sequence{header, body.Bytes(), width}
  return nil
}

func (s *Sequence) ImportSequence(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  return s.ReadSequence(f)
}

// Write header and body, the body wrapped at Width characters per line.
// If Width is not positive the body is written on a single line.
func (s Sequence) WriteSequence(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  if _, err := fmt.Fprintf(w, "%s\n", s.Header); err != nil {
    return err
  }
  width := s.Width
  if width <= 0 {
    width = len(s.Body)
  }
  for i := 0; i < len(s.Body); i += width {
    if _, err := w.Write(s.Body[i:iMin(i+width, len(s.Body))]); err != nil {
      return err
    }
    if _, err := w.WriteString("\n"); err != nil {
      return err
    }
  }
  return w.Flush()
}

func (s Sequence) ExportSequence(filename string, compress bool) error {
  var buffer bytes.Buffer
  if err := s.WriteSequence(&buffer); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// File name of the redacted copy of a FASTA file: the base name without
// its last extension, followed by `.masked.gz' or `.masked.fasta'.
func MaskedFilename(filename string, compress bool) string {
  base := filepath.Base(filename)
  stem := strings.TrimSuffix(base, filepath.Ext(base))
  if compress {
    return stem + ".masked.gz"
  } else {
    return stem + ".masked.fasta"
  }
}

func isSpace(r rune) bool {
  return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

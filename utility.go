/* Copyright (C) 2016 Philipp Benner
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
import "compress/gzip"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

// Divide a by b, the result is rounded up.
func divIntUp(a, b int) int {
  return (a+b-1)/b
}

/* -------------------------------------------------------------------------- */

func writeFile(filename string, r io.Reader, compress bool) error {
  var buffer bytes.Buffer

  if compress {
    w := gzip.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    if err := w.Close(); err != nil {
      return err
    }
  } else {
    w := bufio.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    if err := w.Flush(); err != nil {
      return err
    }
  }
  return os.WriteFile(filename, buffer.Bytes(), 0666)
}

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

type fileReader struct {
  io.Reader
  closers []io.Closer
}

func (r *fileReader) Close() error {
  var err error
  for i := len(r.closers)-1; i >= 0; i-- {
    if e := r.closers[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

// Open a plain or gzipped file for reading.
func openFile(filename string) (io.ReadCloser, error) {
  compressed := isGzip(filename)
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  if !compressed {
    return f, nil
  }
  g, err := gzip.NewReader(f)
  if err != nil {
    f.Close()
    return nil, err
  }
  return &fileReader{g, []io.Closer{f, g}}, nil
}

// Read all lines, without line terminators. A trailing carriage return
// is removed as well.
func readLines(reader io.Reader) ([]string, error) {
  lines   := []string{}
  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 64*1024), 1024*1024*1024)
  for scanner.Scan() {
    line := scanner.Text()
    if n := len(line); n > 0 && line[n-1] == '\r' {
      line = line[:n-1]
    }
    lines = append(lines, line)
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return lines, nil
}

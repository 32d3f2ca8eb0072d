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

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "bufio"
import "fmt"
import "io"
import "sync"

/* -------------------------------------------------------------------------- */

// Progress bar for n jobs, redrawn every n/k finished jobs. Increment
// may be called from several threads.
type Progress struct {
  N, K, LineWidth int
  writer io.Writer
  mtx    sync.Mutex
  done   int
}

/* -------------------------------------------------------------------------- */

func New(writer io.Writer, n, k int) *Progress {
  if k < 1 {
    k = 1
  }
  progress := Progress{N: n, K: n/k, LineWidth: 40, writer: writer}
  if progress.K < 1 {
    progress.K = 1
  }
  return &progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress *Progress) Exec(i int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  // carriage return
  fmt.Fprintf(writer, "%s|", __line_del__)

  for i := 1; i < progress.LineWidth-1; i++ {
    if float64(i)/float64(progress.LineWidth) < p {
      fmt.Fprintf(writer, ">")
    } else {
      fmt.Fprintf(writer, " ")
    }
  }
  fmt.Fprintf(writer, "| %6.2f%%", p*100)
  // add newline if finished
  if p == 1.0 {
    fmt.Fprintf(writer, "\n")
  }
  writer.Flush()

  return buffer.String()
}

func (progress *Progress) Print(i int) {
  if progress.writer == nil {
    return
  }
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(progress.writer, progress.Exec(i))
  }
}

// Mark one more job as finished and redraw the bar if necessary.
func (progress *Progress) Increment() {
  progress.mtx.Lock()
  defer progress.mtx.Unlock()
  progress.done++
  progress.Print(progress.done)
}

func (progress *Progress) Done() int {
  progress.mtx.Lock()
  defer progress.mtx.Unlock()
  return progress.done
}

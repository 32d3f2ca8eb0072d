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
import "sort"

/* -------------------------------------------------------------------------- */

// Closed intervals ordered by their start position. Lists returned by
// CompressMask, CompressPositions and MergeIntervals are disjoint and no
// two intervals are adjacent.
type IntervalList []Interval

/* -------------------------------------------------------------------------- */

// Collects ascending positions into maximal runs. The open flag is
// required because 0 is a valid start position.
type intervalBuilder struct {
  result IntervalList
  open   bool
  from   int
  to     int
}

func (b *intervalBuilder) add(p int) {
  if !b.open {
    b.open = true
    b.from = p
    b.to   = p
    return
  }
  if p == b.to || p == b.to+1 {
    b.to = p
  } else {
    b.close()
    b.open = true
    b.from = p
    b.to   = p
  }
}

func (b *intervalBuilder) close() {
  if b.open {
    b.result = append(b.result, Interval{b.from, b.to})
    b.open   = false
  }
}

func (b *intervalBuilder) intervals() IntervalList {
  b.close()
  if b.result == nil {
    return IntervalList{}
  }
  return b.result
}

/* compression
 * -------------------------------------------------------------------------- */

// Minimal list of closed intervals covering exactly the masked positions.
func CompressMask(mask Mask) IntervalList {
  b := intervalBuilder{}
  mask.each(b.add)
  return b.intervals()
}

// Minimal list of closed intervals covering the given positions, which
// must be sorted in ascending order. Duplicates are allowed.
func CompressPositions(positions []int) IntervalList {
  b := intervalBuilder{}
  for i, p := range positions {
    if i > 0 && p < positions[i-1] {
      panic("CompressPositions(): positions are not sorted")
    }
    b.add(p)
  }
  return b.intervals()
}

// Sort intervals and merge all that overlap or touch.
func MergeIntervals(intervals IntervalList) IntervalList {
  s := make(IntervalList, len(intervals))
  copy(s, intervals)
  sort.Slice(s, func(i, j int) bool {
    return s[i].From < s[j].From
  })
  r := IntervalList{}
  for _, x := range s {
    if n := len(r); n > 0 && r[n-1].Touches(x) {
      if x.To > r[n-1].To {
        r[n-1].To = x.To
      }
    } else {
      r = append(r, x)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (obj IntervalList) Length() int {
  return len(obj)
}

// Number of positions covered by all intervals.
func (obj IntervalList) Count() int {
  n := 0
  for _, r := range obj {
    n += r.Length()
  }
  return n
}

func (obj IntervalList) Positions() []int {
  p := make([]int, 0, obj.Count())
  for _, r := range obj {
    for i := r.From; i <= r.To; i++ {
      p = append(p, i)
    }
  }
  return p
}

// Canonical mask of the given length. Returns an error if an interval
// is not inside [0, length).
func (obj IntervalList) Mask(length int) (Mask, error) {
  m := NewMask(length)
  for _, r := range obj {
    if r.From < 0 || r.To >= length {
      return Mask{}, fmt.Errorf("IntervalList.Mask(): interval %v out of range [0, %d)", r, length)
    }
    m.SetInterval(r)
  }
  return m, nil
}

/* i/o
 * -------------------------------------------------------------------------- */

// Range report, one `from<TAB>to' line per interval. Both end points are
// inclusive, so the report can be read back as a range mask.
func (obj IntervalList) String() string {
  var buffer bytes.Buffer
  for i, r := range obj {
    if i != 0 {
      buffer.WriteString("\n")
    }
    fmt.Fprintf(&buffer, "%d\t%d", r.From, r.To)
  }
  return buffer.String()
}

// Write intervals in range mask format.
func (obj IntervalList) WriteRanges(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  for _, r := range obj {
    if _, err := fmt.Fprintf(w, "%d\t%d\n", r.From, r.To); err != nil {
      return err
    }
  }
  return w.Flush()
}

// Write intervals as BED3. BED intervals are half-open, so the end
// column is To+1.
func (obj IntervalList) WriteBed3(writer io.Writer, seqname string) error {
  w := bufio.NewWriter(writer)
  for _, r := range obj {
    fmt.Fprintf(w,   "%s", seqname)
    fmt.Fprintf(w, "\t%d", r.From)
    fmt.Fprintf(w, "\t%d", r.To+1)
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return w.Flush()
}

func (obj IntervalList) ExportBed3(filename, seqname string, compress bool) error {
  var buffer bytes.Buffer
  if err := obj.WriteBed3(&buffer, seqname); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}

func (obj IntervalList) ExportRanges(filename string, compress bool) error {
  var buffer bytes.Buffer
  if err := obj.WriteRanges(&buffer); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}

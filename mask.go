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

import "bytes"
import "fmt"

import "github.com/bits-and-blooms/bitset"

/* -------------------------------------------------------------------------- */

// Canonical mask with one flag per sequence position. Position i is
// masked if the flag is set. Copies of a Mask share the same bits.
type Mask struct {
  bits   *bitset.BitSet
  length int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMask(length int) Mask {
  if length < 0 {
    panic("NewMask(): negative length")
  }
  return Mask{bitset.New(uint(length)), length}
}

// Create a mask from a string of '0' and '1' characters. Any other
// character is an error.
func NewMaskFromString(s string) (Mask, error) {
  m := NewMask(len(s))
  for i := 0; i < len(s); i++ {
    switch s[i] {
    case '1':
      m.bits.Set(uint(i))
    case '0':
    default:
      return Mask{}, fmt.Errorf("NewMaskFromString(): invalid character `%c' at position %d", s[i], i)
    }
  }
  return m, nil
}

// Create a mask of the given length where exactly the given positions are
// masked.
func NewMaskFromPositions(length int, positions []int) (Mask, error) {
  m := NewMask(length)
  for _, p := range positions {
    if p < 0 || p >= length {
      return Mask{}, fmt.Errorf("NewMaskFromPositions(): position %d out of range [0, %d)", p, length)
    }
    m.bits.Set(uint(p))
  }
  return m, nil
}

/* -------------------------------------------------------------------------- */

// Number of positions covered by the mask.
func (m Mask) Len() int {
  return m.length
}

// Returns true if position i is masked. Positions outside the mask are
// never masked.
func (m Mask) Test(i int) bool {
  if m.bits == nil || i < 0 || i >= m.length {
    return false
  }
  return m.bits.Test(uint(i))
}

// Mark position i. Panics if i is out of range.
func (m Mask) Set(i int) {
  if i < 0 || i >= m.length {
    panic(fmt.Sprintf("Mask.Set(): position %d out of range [0, %d)", i, m.length))
  }
  m.bits.Set(uint(i))
}

// Mark all positions in the closed interval [from, to]. Panics if the
// interval is not inside the mask.
func (m Mask) SetInterval(r Interval) {
  if r.From < 0 || r.To >= m.length {
    panic(fmt.Sprintf("Mask.SetInterval(): %v out of range [0, %d)", r, m.length))
  }
  for i := r.From; i <= r.To; i++ {
    m.bits.Set(uint(i))
  }
}

// Number of masked positions.
func (m Mask) Count() int {
  if m.bits == nil {
    return 0
  }
  return int(m.bits.Count())
}

// Masked positions in ascending order.
func (m Mask) Positions() []int {
  r := []int{}
  m.each(func(p int) {
    r = append(r, p)
  })
  return r
}

func (m Mask) each(f func(int)) {
  if m.bits == nil {
    return
  }
  for i, ok := m.bits.NextSet(0); ok && int(i) < m.length; i, ok = m.bits.NextSet(i+1) {
    f(int(i))
  }
}

func (m Mask) Equals(n Mask) bool {
  if m.length != n.length {
    return false
  }
  if m.bits == nil || n.bits == nil {
    return m.Count() == n.Count()
  }
  return m.bits.Equal(n.bits)
}

/* convert to string
 * -------------------------------------------------------------------------- */

// String of '0' and '1' characters, one per position.
func (m Mask) String() string {
  var buffer bytes.Buffer
  buffer.Grow(m.length)
  for i := 0; i < m.length; i++ {
    if m.Test(i) {
      buffer.WriteByte('1')
    } else {
      buffer.WriteByte('0')
    }
  }
  return buffer.String()
}

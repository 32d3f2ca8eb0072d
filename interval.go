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

import "fmt"

/* -------------------------------------------------------------------------- */

type Interval struct {
  From, To int
}

/* constructors
 * -------------------------------------------------------------------------- */

// Interval of sequence positions. By convention the first position in a
// sequence is numbered 0. The arguments from, to are interpreted as the
// closed interval [from, to], i.e. both end points are masked.
func NewInterval(from, to int) Interval {
  if from > to {
    panic("NewInterval(): from > to")
  }
  return Interval{from, to}
}

/* -------------------------------------------------------------------------- */

// Number of positions covered by the interval.
func (r Interval) Length() int {
  return r.To - r.From + 1
}

// Returns true if r and s overlap or if s starts right after r ends.
func (r Interval) Touches(s Interval) bool {
  return s.From <= r.To+1 && r.From <= s.To+1
}

func (r Interval) Contains(i int) bool {
  return r.From <= i && i <= r.To
}

/* -------------------------------------------------------------------------- */

func (r Interval) String() string {
  return fmt.Sprintf("[%d %d]", r.From, r.To)
}

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

// Positions that are masked in only one of two masks.
type MaskComparison struct {
  OnlyFirst  []int
  OnlySecond []int
  Either     []int
}

/* -------------------------------------------------------------------------- */

// Compare two masks position by position. Masks of different length are
// compared as if the shorter one continued with unmasked positions.
func CompareMasks(a, b Mask) MaskComparison {
  r := MaskComparison{[]int{}, []int{}, []int{}}
  n := iMax(a.Len(), b.Len())
  for i := 0; i < n; i++ {
    x := a.Test(i)
    y := b.Test(i)
    switch {
    case x && !y:
      r.OnlyFirst = append(r.OnlyFirst, i)
      r.Either    = append(r.Either,    i)
    case y && !x:
      r.OnlySecond = append(r.OnlySecond, i)
      r.Either     = append(r.Either,     i)
    }
  }
  return r
}

// Returns true if both masks cover the same positions.
func (obj MaskComparison) Identical() bool {
  return len(obj.Either) == 0
}

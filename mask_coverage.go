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

// Fraction of masked positions in consecutive bins of binSize
// positions. The last bin may be shorter.
func MaskCoverage(mask Mask, binSize int) ([]float64, error) {
  if binSize < 1 {
    return nil, fmt.Errorf("MaskCoverage(): invalid bin size `%d'", binSize)
  }
  n := divIntUp(mask.Len(), binSize)
  r := make([]float64, n)
  c := make([]int,     n)
  mask.each(func(i int) {
    c[i/binSize]++
  })
  for j := 0; j < n; j++ {
    size := iMin(binSize, mask.Len()-j*binSize)
    r[j]  = float64(c[j])/float64(size)
  }
  return r, nil
}

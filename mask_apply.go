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

const DefaultSymbol = 'N'

// Replace every masked position of the sequence with symbol. The
// sequence is not modified, the result is a new slice. Mask and
// sequence must have the same length.
func ApplyMask(mask Mask, sequence []byte, symbol byte) ([]byte, error) {
  if mask.Len() != len(sequence) {
    return nil, fmt.Errorf("%w: mask has %d positions, sequence has %d",
      ErrLengthMismatch, mask.Len(), len(sequence))
  }
  r := make([]byte, len(sequence))
  copy(r, sequence)
  mask.each(func(i int) {
    r[i] = symbol
  })
  return r, nil
}

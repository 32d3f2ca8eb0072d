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

import "unicode"

/* -------------------------------------------------------------------------- */

// Recover the mask of a sequence that was already redacted, i.e. mask
// every position that holds symbol. Letters are compared without case.
func ExtractMask(sequence []byte, symbol byte) Mask {
  s := byte(unicode.ToUpper(rune(symbol)))
  m := NewMask(len(sequence))
  for i := 0; i < len(sequence); i++ {
    if byte(unicode.ToUpper(rune(sequence[i]))) == s {
      m.Set(i)
    }
  }
  return m
}

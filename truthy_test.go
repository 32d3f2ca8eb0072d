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

import   "errors"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestParseTruthy(t *testing.T) {
  for _, s := range []string{"true", "yes", "oui", "TRUE", "Oui", " yes "} {
    if v, err := ParseTruthy(s); err != nil || !v {
      t.Errorf("TestParseTruthy failed for `%s'", s)
    }
  }
  for _, s := range []string{"false", "no", "non", "No"} {
    if v, err := ParseTruthy(s); err != nil || v {
      t.Errorf("TestParseTruthy failed for `%s'", s)
    }
  }
  for _, s := range []string{"", "1", "y", "si", "nein"} {
    if _, err := ParseTruthy(s); !errors.Is(err, ErrInvalidTruthy) {
      t.Errorf("TestParseTruthy failed for `%s'", s)
    }
  }
}

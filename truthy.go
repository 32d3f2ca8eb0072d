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
import "strings"

/* -------------------------------------------------------------------------- */

var truthyTokens = map[string]bool{
  "true" : true,
  "yes"  : true,
  "oui"  : true,
  "false": false,
  "no"   : false,
  "non"  : false,
}

// Parse a boolean command line token. Accepted are true, yes and oui
// for true and false, no and non for false, in any case.
func ParseTruthy(token string) (bool, error) {
  if v, ok := truthyTokens[strings.ToLower(strings.TrimSpace(token))]; ok {
    return v, nil
  }
  return false, fmt.Errorf("%w: `%s' (expected one of: true, yes, oui, false, no, non)", ErrInvalidTruthy, token)
}

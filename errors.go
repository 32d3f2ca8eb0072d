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

import "errors"
import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

var (
  ErrMalformedMaskLine = errors.New("malformed mask line")
  ErrUnsupportedFormat = errors.New("unsupported mask format")
  ErrLengthMismatch    = errors.New("mask length does not match sequence length")
  ErrTooManyMalformed  = errors.New("too many malformed mask lines")
  ErrInvalidTruthy     = errors.New("invalid boolean token")
)

/* -------------------------------------------------------------------------- */

// Returned by ParseMaskFormat and DecodeMask for unknown format tags.
type UnsupportedFormatError struct {
  Format string
}

func (err UnsupportedFormatError) Error() string {
  return fmt.Sprintf("unknown mask format: %s (expected one of: %s)",
    err.Format, strings.Join(MaskFormatNames(), ", "))
}

func (err UnsupportedFormatError) Unwrap() error {
  return ErrUnsupportedFormat
}

/* diagnostics
 * -------------------------------------------------------------------------- */

// A mask line that was skipped while decoding. Line numbers start at 1.
type Diagnostic struct {
  Line   int
  Text   string
  Reason string
}

func (d Diagnostic) Error() string {
  return fmt.Sprintf("line %d: %s: '%s'", d.Line, d.Reason, d.Text)
}

func (d Diagnostic) Unwrap() error {
  return ErrMalformedMaskLine
}

type Diagnostics []Diagnostic

func (d Diagnostics) Len() int {
  return len(d)
}

// Err returns nil if no line was skipped, otherwise an error that
// wraps ErrMalformedMaskLine and lists every diagnostic.
func (d Diagnostics) Err() error {
  if len(d) == 0 {
    return nil
  }
  errs := make([]error, len(d))
  for i := 0; i < len(d); i++ {
    errs[i] = d[i]
  }
  return errors.Join(errs...)
}

// Check returns ErrTooManyMalformed if more than max lines were skipped.
// A negative max disables the check.
func (d Diagnostics) Check(max int) error {
  if max >= 0 && len(d) > max {
    return fmt.Errorf("%w: %d skipped, at most %d allowed", ErrTooManyMalformed, len(d), max)
  }
  return nil
}

func (d *Diagnostics) add(line int, text, reason string) {
  *d = append(*d, Diagnostic{Line: line, Text: text, Reason: reason})
}

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

type TransformOptions struct {
  // write the result gzip compressed
  Compress       bool
  // compute the range report
  ReportRanges   bool
  // replacement for masked positions
  Symbol         byte
  // abort if more than MaxMalformed mask lines were skipped
  LimitMalformed bool
  MaxMalformed   int
}

type TransformResult struct {
  Sequence    Sequence
  Mask        Mask
  // empty unless ReportRanges is set
  Ranges      IntervalList
  Report      string
  Diagnostics Diagnostics
  Compress    bool
}

/* -------------------------------------------------------------------------- */

func DefaultTransformOptions() TransformOptions {
  return TransformOptions{
    Symbol: DefaultSymbol,
  }
}

/* -------------------------------------------------------------------------- */

// Decode the mask lines, apply the mask to the sequence and optionally
// compress the mask into a range report. Header and width of the
// sequence are kept. Nothing is applied if the format is unknown, if
// too many lines were malformed, or if the mask does not have the
// length of the sequence.
func TransformSequence(lines []string, format string, sequence Sequence, options TransformOptions) (TransformResult, error) {
  result := TransformResult{Compress: options.Compress}

  mask, diagnostics, err := DecodeMask(format, lines, sequence.Length())
  if err != nil {
    return result, err
  }
  result.Diagnostics = diagnostics

  if options.LimitMalformed {
    if err := diagnostics.Check(options.MaxMalformed); err != nil {
      return result, err
    }
  }
  symbol := options.Symbol
  if symbol == 0 {
    symbol = DefaultSymbol
  }
  body, err := ApplyMask(mask, sequence.Body, symbol)
  if err != nil {
    return result, err
  }
  result.Sequence = Sequence{sequence.Header, body, sequence.Width}
  result.Mask     = mask

  if options.ReportRanges {
    result.Ranges = CompressMask(mask)
    result.Report = result.Ranges.String()
  }
  return result, nil
}

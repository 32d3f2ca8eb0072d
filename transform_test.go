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

import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestTransformSequence(t *testing.T) {
  sequence := NewSequence("chr1", []byte("ACGTACGTAC"), 4)

  options := DefaultTransformOptions()
  options.ReportRanges = true
  options.Compress     = true

  for _, x := range []struct {
    format string
    lines  []string
  }{
    {"fasta",    []string{">mask", "10000", "11101"}},
    {"position", []string{"0", "5", "6", "7", "9"}},
    {"range",    []string{"0\t0", "5\t7", "9\t9"}},
  } {
    r, err := TransformSequence(x.lines, x.format, sequence, options)
    require.NoError(t, err, x.format)

    assert.Equal(t, ">chr1", r.Sequence.Header)
    assert.Equal(t, 4, r.Sequence.Width)
    assert.Equal(t, "NCGTANNNAN", string(r.Sequence.Body))
    assert.Equal(t, "1000011101", r.Mask.String())
    assert.Equal(t, IntervalList{{0, 0}, {5, 7}, {9, 9}}, r.Ranges)
    assert.Equal(t, "0\t0\n5\t7\n9\t9", r.Report)
    assert.True(t, r.Compress)
    assert.Empty(t, r.Diagnostics)
  }
  // input is not modified
  assert.Equal(t, "ACGTACGTAC", string(sequence.Body))
}

func TestTransformSequenceNoReport(t *testing.T) {
  sequence := NewSequence("chr1", []byte("ACGT"), 60)

  r, err := TransformSequence([]string{"1", "x"}, "position", sequence, DefaultTransformOptions())
  require.NoError(t, err)
  assert.Equal(t, "ANGT", string(r.Sequence.Body))
  assert.Nil(t, r.Ranges)
  assert.Equal(t, "", r.Report)
  assert.Len(t, r.Diagnostics, 1)

  // zero value options skip malformed lines without a limit
  r, err = TransformSequence([]string{"1", "x"}, "position", sequence, TransformOptions{ReportRanges: true})
  require.NoError(t, err)
  assert.Equal(t, "ANGT", string(r.Sequence.Body))
  assert.Equal(t, IntervalList{{1, 1}}, r.Ranges)
  assert.Len(t, r.Diagnostics, 1)

  // no malformed line allowed
  options := TransformOptions{Symbol: 'X', LimitMalformed: true}
  _, err = TransformSequence([]string{"1", "x"}, "position", sequence, options)
  assert.ErrorIs(t, err, ErrTooManyMalformed)

  options.MaxMalformed = 1
  r, err = TransformSequence([]string{"1", "x"}, "position", sequence, options)
  require.NoError(t, err)
  assert.Equal(t, "AXGT", string(r.Sequence.Body))
}

func TestTransformSequenceErrors(t *testing.T) {
  sequence := NewSequence("chr1", []byte("ACGTACGTAC"), 4)
  options  := DefaultTransformOptions()

  _, err := TransformSequence([]string{"0"}, "bogus", sequence, options)
  assert.ErrorIs(t, err, ErrUnsupportedFormat)

  r, err := TransformSequence([]string{">mask", "101"}, "fasta", sequence, options)
  assert.ErrorIs(t, err, ErrLengthMismatch)
  assert.Empty(t, r.Sequence.Body)

  options.LimitMalformed = true
  options.MaxMalformed   = 1
  r, err = TransformSequence([]string{"a", "b", "3"}, "position", sequence, options)
  assert.ErrorIs(t, err, ErrTooManyMalformed)
  assert.Len(t, r.Diagnostics, 2)
  assert.Empty(t, r.Sequence.Body)
}

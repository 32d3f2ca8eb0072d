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

import   "bytes"
import   "math/rand"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestCompressPositions1(t *testing.T) {
  assert.Equal(t, IntervalList{{1, 5}, {7, 7}},
    CompressPositions([]int{1, 2, 3, 4, 5, 7}))
  assert.Equal(t, IntervalList{{0, 4}, {6, 6}},
    CompressPositions([]int{0, 1, 2, 3, 4, 6}))
  assert.Equal(t, IntervalList{{0, 0}, {59, 60}, {62, 62}, {64, 64}, {119, 121}},
    CompressPositions([]int{0, 59, 60, 62, 64, 119, 120, 121}))
  assert.Equal(t, IntervalList{{3, 4}},
    CompressPositions([]int{3, 3, 4, 4}))
}

func TestCompressPositions2(t *testing.T) {
  r := CompressPositions(nil)
  assert.NotNil(t, r)
  assert.Empty(t, r)
  assert.Equal(t, "", r.String())

  assert.Panics(t, func() {
    CompressPositions([]int{2, 1})
  })
}

func TestCompressMask1(t *testing.T) {
  m, err := NewMaskFromString("1000011101")
  require.NoError(t, err)

  r := CompressMask(m)
  assert.Equal(t, IntervalList{{0, 0}, {5, 7}, {9, 9}}, r)
  assert.Equal(t, 5, r.Count())
  assert.Equal(t, 3, r.Length())
  assert.Equal(t, m.Positions(), r.Positions())

  n, err := r.Mask(m.Len())
  require.NoError(t, err)
  assert.True(t, m.Equals(n))
}

func TestCompressMask2(t *testing.T) {
  assert.Empty(t, CompressMask(NewMask(100)))

  m := NewMask(5)
  for i := 0; i < 5; i++ {
    m.Set(i)
  }
  assert.Equal(t, IntervalList{{0, 4}}, CompressMask(m))
}

func TestIntervalListMask(t *testing.T) {
  _, err := IntervalList{{2, 5}}.Mask(5)
  assert.Error(t, err)
  _, err = IntervalList{{-1, 2}}.Mask(5)
  assert.Error(t, err)
}

/* -------------------------------------------------------------------------- */

func TestMergeIntervals(t *testing.T) {
  r := MergeIntervals(IntervalList{{10, 12}, {0, 3}, {4, 6}, {11, 20}, {30, 30}})
  assert.Equal(t, IntervalList{{0, 6}, {10, 20}, {30, 30}}, r)
  assert.Empty(t, MergeIntervals(nil))
}

/* -------------------------------------------------------------------------- */

func TestIntervalListWrite(t *testing.T) {
  r := IntervalList{{0, 0}, {5, 7}, {9, 9}}

  assert.Equal(t, "0\t0\n5\t7\n9\t9", r.String())

  var buffer bytes.Buffer
  require.NoError(t, r.WriteRanges(&buffer))
  assert.Equal(t, "0\t0\n5\t7\n9\t9\n", buffer.String())

  buffer.Reset()
  require.NoError(t, r.WriteBed3(&buffer, "chr1"))
  assert.Equal(t, "chr1\t0\t1\nchr1\t5\t8\nchr1\t9\t10\n", buffer.String())
}

func TestIntervalListRoundTrip(t *testing.T) {
  m, err := NewMaskFromString("0110001111010")
  require.NoError(t, err)

  var buffer bytes.Buffer
  require.NoError(t, CompressMask(m).WriteRanges(&buffer))

  lines, err := ReadMaskLines(&buffer)
  require.NoError(t, err)

  n, diagnostics := DecodeRangeMask(lines, m.Len())
  assert.Empty(t, diagnostics)
  assert.True(t, m.Equals(n))
}

func randomMask(r *rand.Rand, length int) Mask {
  m := NewMask(length)
  p := r.Float64()
  for i := 0; i < length; i++ {
    if r.Float64() < p {
      m.Set(i)
    }
  }
  return m
}

func TestIntervalListRandom(t *testing.T) {
  r := rand.New(rand.NewSource(1))

  for k := 0; k < 1000; k++ {
    m := randomMask(r, r.Intn(201))
    c := CompressMask(m)

    for i := 1; i < len(c); i++ {
      require.True(t, c[i-1].To+1 < c[i].From, "intervals %v and %v not separated", c[i-1], c[i])
    }
    for _, x := range c {
      require.True(t, x.From <= x.To)
    }
    require.Equal(t, m.Positions(), c.Positions())

    var buffer bytes.Buffer
    require.NoError(t, c.WriteRanges(&buffer))
    lines, err := ReadMaskLines(&buffer)
    require.NoError(t, err)

    n, diagnostics := DecodeRangeMask(lines, m.Len())
    require.Empty(t, diagnostics)
    require.True(t, m.Equals(n), "round trip failed for %s", m)
  }
}

/* -------------------------------------------------------------------------- */

func TestInterval(t *testing.T) {
  r := NewInterval(3, 5)
  assert.Equal(t, 3, r.Length())
  assert.True (t, r.Contains(3))
  assert.True (t, r.Contains(5))
  assert.False(t, r.Contains(6))
  assert.True (t, r.Touches(Interval{6, 8}))
  assert.True (t, r.Touches(Interval{0, 2}))
  assert.False(t, r.Touches(Interval{7, 8}))
  assert.Equal(t, "[3 5]", r.String())
  assert.Panics(t, func() { NewInterval(5, 3) })
}

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
import   "math/rand"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestApplyMask1(t *testing.T) {
  m, _ := NewMaskFromString("1000011101")
  s := []byte("ACGTACGTAC")

  r, err := ApplyMask(m, s, DefaultSymbol)
  if err != nil {
    t.Fatal(err)
  }
  if string(r) != "NCGTANNNAN" {
    t.Errorf("TestApplyMask1 failed: %s", r)
  }
  if string(s) != "ACGTACGTAC" {
    t.Error("TestApplyMask1 failed: input modified")
  }
  for i := 0; i < len(s); i++ {
    if m.Test(i) != (r[i] == 'N') {
      t.Error("TestApplyMask1 failed")
    }
  }
}

func TestApplyMask2(t *testing.T) {
  m, _ := NewMaskFromString("0110")
  r, err := ApplyMask(m, []byte("acgt"), 'X')
  if err != nil {
    t.Fatal(err)
  }
  if string(r) != "aXXt" {
    t.Errorf("TestApplyMask2 failed: %s", r)
  }
}

func TestApplyMask3(t *testing.T) {
  m, _ := NewMaskFromString("0110")
  if _, err := ApplyMask(m, []byte("acg"), 'N'); !errors.Is(err, ErrLengthMismatch) {
    t.Error("TestApplyMask3 failed")
  }
  if _, err := ApplyMask(m, []byte("acgta"), 'N'); !errors.Is(err, ErrLengthMismatch) {
    t.Error("TestApplyMask3 failed")
  }
}

/* -------------------------------------------------------------------------- */

func TestExtractMask(t *testing.T) {
  m := ExtractMask([]byte("NCGTAnNNAN"), 'N')
  if m.String() != "1000011101" {
    t.Errorf("TestExtractMask failed: %s", m.String())
  }
  m = ExtractMask([]byte("NCGTAnNNAN"), 'n')
  if m.String() != "1000011101" {
    t.Errorf("TestExtractMask failed: %s", m.String())
  }
  if ExtractMask(nil, 'N').Len() != 0 {
    t.Error("TestExtractMask failed")
  }
}

func TestApplyMask4(t *testing.T) {
  r := rand.New(rand.NewSource(2))

  for k := 0; k < 1000; k++ {
    n := r.Intn(201)
    m := randomMask(r, n)
    s := make([]byte, n)
    for i := 0; i < n; i++ {
      s[i] = "ACGT"[r.Intn(4)]
    }
    x, err := ApplyMask(m, s, 'N')
    if err != nil {
      t.Fatal(err)
    }
    if len(x) != n {
      t.Fatal("TestApplyMask4 failed")
    }
    for i := 0; i < n; i++ {
      if m.Test(i) {
        if x[i] != 'N' {
          t.Fatalf("TestApplyMask4 failed at position %d", i)
        }
      } else if x[i] != s[i] {
        t.Fatalf("TestApplyMask4 failed at position %d", i)
      }
    }
  }
}

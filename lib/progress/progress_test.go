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

package progress

/* -------------------------------------------------------------------------- */

import   "bytes"
import   "strings"
import   "sync"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestProgress1(t *testing.T) {
  var buffer bytes.Buffer

  p := New(&buffer, 100, 10)
  if p.K != 10 {
    t.Error("TestProgress1 failed")
  }
  var wg sync.WaitGroup
  for i := 0; i < 100; i++ {
    wg.Add(1)
    go func() {
      defer wg.Done()
      p.Increment()
    }()
  }
  wg.Wait()

  if p.Done() != 100 {
    t.Error("TestProgress1 failed")
  }
  if !strings.HasSuffix(buffer.String(), "| 100.00%\n") {
    t.Error("TestProgress1 failed")
  }
  // redrawn every 10 jobs
  if n := strings.Count(buffer.String(), __line_del__); n != 10 {
    t.Errorf("TestProgress1 failed: %d", n)
  }
}

func TestProgress2(t *testing.T) {
  p := New(nil, 3, 100)
  if p.K != 1 {
    t.Error("TestProgress2 failed")
  }
  p.Increment()
  if p.Done() != 1 {
    t.Error("TestProgress2 failed")
  }
  if s := New(nil, 0, 1).Exec(0); !strings.HasSuffix(s, "| 100.00%\n") {
    t.Error("TestProgress2 failed")
  }
  if s := New(nil, 4, 1).Exec(1); !strings.HasSuffix(s, "|  25.00%") {
    t.Errorf("TestProgress2 failed: %q", s)
  }
}

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

package config

/* -------------------------------------------------------------------------- */

import   "os"
import   "path/filepath"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func writeConfig(t *testing.T, content string) string {
  filename := filepath.Join(t.TempDir(), "config.yaml")
  require.NoError(t, os.WriteFile(filename, []byte(content), 0666))
  return filename
}

func TestDefault(t *testing.T) {
  config := Default()
  assert.NoError(t, config.Validate())
  assert.Equal(t, byte('N'), config.SymbolByte())
  assert.Equal(t, -1, config.MaxMalformed)
}

func TestLoad(t *testing.T) {
  filename := writeConfig(t, "symbol: X\nthreads: 4\noutput-dir: /tmp/masked\ncolor: false\n")

  config, err := Load(filename)
  require.NoError(t, err)
  assert.Equal(t, byte('X'), config.SymbolByte())
  assert.Equal(t, 4, config.Threads)
  assert.Equal(t, "/tmp/masked", config.OutputDir)
  assert.False(t, config.Color)
  // not in file
  assert.Equal(t, -1,    config.MaxMalformed)
  assert.Equal(t, 10000, config.BinSize)
}

func TestLoadInvalid(t *testing.T) {
  for _, content := range []string{
    "symbol: NN\n",
    "threads: 0\n",
    "bin-size: -5\n",
    "output-dir: \"\"\n",
    "threads: [1, 2\n",
  } {
    _, err := Load(writeConfig(t, content))
    assert.Error(t, err, content)
  }
  _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
  assert.Error(t, err)
}

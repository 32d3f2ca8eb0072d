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

import "fmt"
import "os"

import "gopkg.in/yaml.v3"

/* -------------------------------------------------------------------------- */

// Settings shared by all tools. Values are read from a YAML file and
// may be overridden by command line options.
type Config struct {
  Verbose      int    `yaml:"verbose"`
  Symbol       string `yaml:"symbol"`
  MaxMalformed int    `yaml:"max-malformed"`
  OutputDir    string `yaml:"output-dir"`
  Threads      int    `yaml:"threads"`
  BinSize      int    `yaml:"bin-size"`
  Color        bool   `yaml:"color"`
}

/* -------------------------------------------------------------------------- */

func Default() Config {
  return Config{
    Symbol      : "N",
    MaxMalformed: -1,
    OutputDir   : ".",
    Threads     : 1,
    BinSize     : 10000,
    Color       : true,
  }
}

// Read a YAML configuration file. Fields missing in the file keep their
// default value.
func Load(filename string) (Config, error) {
  config := Default()
  data, err := os.ReadFile(filename)
  if err != nil {
    return config, err
  }
  if err := yaml.Unmarshal(data, &config); err != nil {
    return config, fmt.Errorf("parsing config `%s': %w", filename, err)
  }
  if err := config.Validate(); err != nil {
    return config, fmt.Errorf("config `%s': %w", filename, err)
  }
  return config, nil
}

func (config Config) Validate() error {
  if len(config.Symbol) != 1 {
    return fmt.Errorf("symbol must be a single character, got `%s'", config.Symbol)
  }
  if config.Threads < 1 {
    return fmt.Errorf("invalid number of threads `%d'", config.Threads)
  }
  if config.BinSize < 1 {
    return fmt.Errorf("invalid bin size `%d'", config.BinSize)
  }
  if config.OutputDir == "" {
    return fmt.Errorf("output directory must not be empty")
  }
  return nil
}

// The replacement character for masked positions.
func (config Config) SymbolByte() byte {
  return config.Symbol[0]
}

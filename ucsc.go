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

import "database/sql"
import "fmt"
import "regexp"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

const UCSCServer = "genome-mysql.cse.ucsc.edu:3306"

var ucscTableName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type rowScanner interface {
  Next() bool
  Scan(dest ...interface{}) error
  Err() error
}

/* import repeats from ucsc
 * -------------------------------------------------------------------------- */

// Import repeat regions of a single sequence from the UCSC public MySQL
// server, e.g. genome "hg19", table "rmsk", seqname "chr21". The result
// is sorted and merged, with closed intervals.
func ImportRepeatsFromUCSC(genome, table, seqname string) (IntervalList, error) {
  if !ucscTableName.MatchString(table) {
    return nil, fmt.Errorf("ImportRepeatsFromUCSC(): invalid table name `%s'", table)
  }
  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(%s)/%s", UCSCServer, genome))
  if err != nil {
    return nil, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return nil, err
  }
  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT genoStart, genoEnd FROM %s WHERE genoName = ?", table), seqname)
  if err != nil {
    return nil, err
  }
  defer rows.Close()

  return readRepeatRows(rows)
}

// UCSC tables store half-open intervals [genoStart, genoEnd).
func readRepeatRows(rows rowScanner) (IntervalList, error) {
  var i_from, i_to int

  r := IntervalList{}
  for rows.Next() {
    if err := rows.Scan(&i_from, &i_to); err != nil {
      return nil, err
    }
    if i_from < 0 || i_to <= i_from {
      return nil, fmt.Errorf("readRepeatRows(): invalid repeat [%d, %d)", i_from, i_to)
    }
    r = append(r, Interval{i_from, i_to-1})
  }
  if err := rows.Err(); err != nil {
    return nil, err
  }
  return MergeIntervals(r), nil
}

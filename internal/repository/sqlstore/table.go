package sqlstore

import (
	"fmt"
	"strings"

	"go-portfolio-backend/pkg/database"

	"github.com/lib/pq"
)

// Table describes how an entity maps onto its table.
// Every table has an integer "id" primary key followed by TEXT columns.
type Table[T any] struct {
	Name    string
	Columns []string
	// Values returns the writable column values of v in Columns order
	Values func(v *T) []any
	// Targets returns scan destinations for id followed by Columns
	Targets func(v *T) []any
	SetID   func(v *T, id int64)
}

// TableName implements Schema
func (t Table[T]) TableName() string {
	return t.Name
}

// CreateStatement implements Schema
func (t Table[T]) CreateStatement(d database.Dialect) string {
	defs := make([]string, 0, len(t.Columns)+1)
	defs = append(defs, pq.QuoteIdentifier("id")+" "+d.IdentityColumn())
	for _, c := range t.Columns {
		defs = append(defs, pq.QuoteIdentifier(c)+" TEXT")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.table(), strings.Join(defs, ", "))
}

func (t Table[T]) scan(row database.Scanner) (T, error) {
	var v T
	err := row.Scan(t.Targets(&v)...)
	return v, err
}

func (t Table[T]) table() string {
	return pq.QuoteIdentifier(t.Name)
}

func (t Table[T]) selectList() string {
	cols := make([]string, 0, len(t.Columns)+1)
	cols = append(cols, pq.QuoteIdentifier("id"))
	for _, c := range t.Columns {
		cols = append(cols, pq.QuoteIdentifier(c))
	}
	return strings.Join(cols, ", ")
}

func (t Table[T]) selectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", t.selectList(), t.table())
}

func (t Table[T]) insertSQL() string {
	cols := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = pq.QuoteIdentifier(c)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.table(), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

func (t Table[T]) updateSQL(where string) string {
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = pq.QuoteIdentifier(c) + " = ?"
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s", t.table(), strings.Join(sets, ", "), where)
}

func (t Table[T]) deleteSQL() string {
	return "DELETE FROM " + t.table()
}

func (t Table[T]) countSQL() string {
	return "SELECT COUNT(*) FROM " + t.table()
}

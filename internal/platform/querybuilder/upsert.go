package querybuilder

import "strings"

type assignment struct {
	column string
	expr   string
}

// ConflictClause renders the ON CONFLICT suffix of an upsert.
type ConflictClause struct {
	table string
	keys  []string
	sets  []assignment
}

func OnConflict(table string, keys ...string) *ConflictClause {
	return &ConflictClause{table: table, keys: append([]string(nil), keys...)}
}

// Overwrite replaces each column with the incoming row's value.
func (c *ConflictClause) Overwrite(columns ...string) *ConflictClause {
	for _, col := range columns {
		c.sets = append(c.sets, assignment{column: col, expr: "EXCLUDED." + col})
	}
	return c
}

// KeepExisting only overwrites the column when the incoming value is not NULL.
func (c *ConflictClause) KeepExisting(columns ...string) *ConflictClause {
	for _, col := range columns {
		c.sets = append(c.sets, assignment{
			column: col,
			expr:   "COALESCE(EXCLUDED." + col + ", " + c.table + "." + col + ")",
		})
	}
	return c
}

func (c *ConflictClause) SetExpr(column, expr string) *ConflictClause {
	c.sets = append(c.sets, assignment{column: column, expr: expr})
	return c
}

func (c *ConflictClause) String() string {
	var buf strings.Builder
	buf.WriteString("ON CONFLICT (")
	buf.WriteString(strings.Join(c.keys, ", "))
	buf.WriteString(")")
	if len(c.sets) == 0 {
		buf.WriteString(" DO NOTHING")
		return buf.String()
	}
	buf.WriteString(" DO UPDATE SET ")
	for i, s := range c.sets {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s.column)
		buf.WriteString(" = ")
		buf.WriteString(s.expr)
	}
	return buf.String()
}

package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// Column names an entries column (or derived expression) a filter can test
type Column string

const (
	ColumnUID           Column = "uid"
	ColumnEmployeeName  Column = "employee_name"
	ColumnCompletedTask Column = "completed_task"
	ColumnDateStarted   Column = "date_started"
	ColumnNotes         Column = "notes"
	ColumnTimeTaken     Column = "time_taken"
	ColumnMinutes       Column = "(time_taken / 60)"
)

// Operator is a numeric comparison operator
type Operator string

const (
	OpEq Operator = "="
	OpLt Operator = "<"
	OpLe Operator = "<="
	OpGt Operator = ">"
	OpGe Operator = ">="
)

// Filter is a predicate over entries compiled to a parameterised WHERE clause
type Filter interface {
	toSQL() (string, []interface{})
}

type eqFilter struct {
	column Column
	value  interface{}
}

type containsFilter struct {
	column Column
	text   string
}

type compareFilter struct {
	column Column
	op     Operator
	value  int64
}

type junction struct {
	sep     string
	empty   string
	filters []Filter
}

// Eq matches entries whose column equals value. Times are compared in their stored form.
func Eq(column Column, value interface{}) Filter {
	return eqFilter{column: column, value: value}
}

// Contains matches entries whose column holds text as a case-sensitive substring.
// NULL columns never match.
func Contains(column Column, text string) Filter {
	return containsFilter{column: column, text: text}
}

// Compare matches entries whose numeric column satisfies op against value
func Compare(column Column, op Operator, value int64) Filter {
	return compareFilter{column: column, op: op, value: value}
}

// And matches entries satisfying every filter
func And(filters ...Filter) Filter {
	return junction{sep: " AND ", empty: "1 = 1", filters: filters}
}

// Or matches entries satisfying at least one filter
func Or(filters ...Filter) Filter {
	return junction{sep: " OR ", empty: "1 = 0", filters: filters}
}

func (f eqFilter) toSQL() (string, []interface{}) {
	value := f.value
	if t, ok := value.(time.Time); ok {
		value = FormatTimeForDB(t)
	}
	return fmt.Sprintf("%s = ?", f.column), []interface{}{value}
}

func (f containsFilter) toSQL() (string, []interface{}) {
	return fmt.Sprintf("instr(%s, ?) > 0", f.column), []interface{}{f.text}
}

func (f compareFilter) toSQL() (string, []interface{}) {
	switch f.op {
	case OpEq, OpLt, OpLe, OpGt, OpGe:
	default:
		// unknown operators never match
		return "1 = 0", nil
	}
	return fmt.Sprintf("%s %s ?", f.column, f.op), []interface{}{f.value}
}

func (j junction) toSQL() (string, []interface{}) {
	if len(j.filters) == 0 {
		return j.empty, nil
	}

	parts := make([]string, 0, len(j.filters))
	var args []interface{}
	for _, f := range j.filters {
		clause, fArgs := f.toSQL()
		parts = append(parts, clause)
		args = append(args, fArgs...)
	}
	return "(" + strings.Join(parts, j.sep) + ")", args
}

// BuildWhere renders filter as a WHERE clause; a nil filter selects everything
func BuildWhere(filter Filter) (string, []interface{}) {
	if filter == nil {
		return "", nil
	}
	clause, args := filter.toSQL()
	return " WHERE " + clause, args
}

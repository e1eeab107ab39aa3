// Package fixtures provides seeded datasets for integration tests that run
// paginated queries against an in-memory SQLite store.
package fixtures

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pagequery/internal/infra/adapter/persistence/sqlstore"
)

// Employee is one row of the emp table.
type Employee struct {
	ID     int64
	Name   string
	Dept   string
	Active bool
	Salary float64
}

// Employees returns a dataset with 3 distinct departments among active rows.
// The inactive rows add a fourth department that must not be counted when
// filtering on active.
func Employees() []Employee {
	return []Employee{
		{ID: 1, Name: "ada", Dept: "eng", Active: true, Salary: 120},
		{ID: 2, Name: "bob", Dept: "eng", Active: true, Salary: 95},
		{ID: 3, Name: "cy", Dept: "ops", Active: true, Salary: 80},
		{ID: 4, Name: "dee", Dept: "sales", Active: true, Salary: 70},
		{ID: 5, Name: "eve", Dept: "sales", Active: true, Salary: 72.5},
		{ID: 6, Name: "fay", Dept: "legal", Active: false, Salary: 110},
		{ID: 7, Name: "gus", Dept: "eng", Active: false, Salary: 60},
		{ID: 8, Name: "hal", Dept: "ops", Active: true, Salary: 85},
	}
}

const createEmp = `CREATE TABLE emp (
    id     INTEGER PRIMARY KEY,
    name   VARCHAR(50) NOT NULL,
    dept   VARCHAR(50) NOT NULL,
    active BOOLEAN NOT NULL,
    salary DOUBLE NOT NULL
)`

// LoadEmployees creates the emp table and inserts rows through tpl.
func LoadEmployees(ctx context.Context, db *sql.DB, tpl *sqlstore.Template, rows []Employee) error {
	if _, err := db.ExecContext(ctx, createEmp); err != nil {
		return fmt.Errorf("create emp: %w", err)
	}
	for _, e := range rows {
		cols := sqlstore.NewColumns().
			Long("id", e.ID).
			String("name", e.Name).
			String("dept", e.Dept).
			Bool("active", e.Active).
			Double("salary", e.Salary)
		if _, err := tpl.Insert(ctx, "emp", cols); err != nil {
			return fmt.Errorf("insert emp %d: %w", e.ID, err)
		}
	}
	return nil
}

const createEvents = `CREATE TABLE t (
    id         INTEGER PRIMARY KEY,
    created_at TIMESTAMP NOT NULL
)`

// LoadEvents creates table t with n rows. Row i (1-based) is created i hours
// after base, so ORDER BY created_at DESC yields ids n, n-1, ..., 1.
func LoadEvents(ctx context.Context, db *sql.DB, tpl *sqlstore.Template, n int, base time.Time) error {
	if _, err := db.ExecContext(ctx, createEvents); err != nil {
		return fmt.Errorf("create t: %w", err)
	}
	for i := 1; i <= n; i++ {
		cols := sqlstore.NewColumns().
			Long("id", int64(i)).
			Date("created_at", base.Add(time.Duration(i)*time.Hour))
		if _, err := tpl.Insert(ctx, "t", cols); err != nil {
			return fmt.Errorf("insert t %d: %w", i, err)
		}
	}
	return nil
}

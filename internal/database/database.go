package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	_ "github.com/mattn/go-sqlite3"
)

// dbConn is the subset of *sql.DB (and *sql.Tx) the repositories need
type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type DB struct {
	conn *sql.DB
}

func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Serialize writers; sqlite allows a single writer anyway
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{conn: conn}, nil
}

func (db *DB) DB() *sql.DB {
	return db.conn
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// Signups returns the signup repository backed by this database
func (db *DB) Signups() contract.SignupRepo {
	return newSignupRepo(db.conn)
}

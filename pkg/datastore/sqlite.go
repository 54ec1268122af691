package datastore

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteDatastore struct {
	db     *sql.DB
	config *Config
}

func NewSQLiteDatastore(config *Config) (*SQLiteDatastore, error) {
	db, err := sql.Open("sqlite3", config.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// one connection, every ":memory:" connection is a separate database
	db.SetMaxOpenConns(1)

	// Create table if it doesn't exist.
	columnDefs := make([]string, 0, len(config.ColumnConfig))
	for name, typ := range config.ColumnConfig {
		columnDefs = append(columnDefs, fmt.Sprintf("%s %s", name, typ))
	}
	query := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		config.TableName,
		strings.Join(columnDefs, ", "),
	)
	if _, err = db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table %s: %v", config.TableName, err)
	}
	return &SQLiteDatastore{
		db:     db,
		config: config,
	}, nil
}

func (ds *SQLiteDatastore) Close() error {
	return ds.db.Close()
}

// scanTarget a pointer of the go type matching the declared column type
func (ds *SQLiteDatastore) scanTarget(column string) (interface{}, error) {
	typ := strings.ToLower(ds.config.ColumnConfig[column])
	switch {
	case strings.HasPrefix(typ, "text"):
		return new(sql.NullString), nil
	case strings.HasPrefix(typ, "int"):
		// For simplicity, we use int64 for all integers.
		return new(sql.NullInt64), nil
	case strings.HasPrefix(typ, "float"):
		return new(sql.NullFloat64), nil
	}
	return nil, fmt.Errorf("unsupported column type: %s of column %s", ds.config.ColumnConfig[column], column)
}

func nullValue(target interface{}) interface{} {
	switch v := target.(type) {
	case *sql.NullString:
		if v.Valid {
			return v.String
		}
	case *sql.NullInt64:
		if v.Valid {
			return v.Int64
		}
	case *sql.NullFloat64:
		if v.Valid {
			return v.Float64
		}
	}
	return nil
}

func (ds *SQLiteDatastore) Get(key string, columns []string) (map[string]interface{}, error) {
	// Prepare a slice to hold the values.
	values := make([]interface{}, len(columns))
	for i, column := range columns {
		target, err := ds.scanTarget(column)
		if err != nil {
			return nil, err
		}
		values[i] = target
	}

	row := ds.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
			strings.Join(columns, ", "), ds.config.TableName, ds.config.PrimaryKeyColumnName),
		key,
	)
	if err := row.Scan(values...); err != nil {
		if err == sql.ErrNoRows {
			// There is no row with the given key.
			return nil, nil
		}
		return nil, err
	}

	result := make(map[string]interface{}, len(columns))
	for i, column := range columns {
		if v := nullValue(values[i]); v != nil {
			result[column] = v
		}
	}
	return result, nil
}

func (ds *SQLiteDatastore) Put(key string, values map[string]interface{}) error {
	columns := []string{ds.config.PrimaryKeyColumnName}
	placeholders := []string{"?"}
	args := []interface{}{key}
	for column, value := range values {
		columns = append(columns, column)
		placeholders = append(placeholders, "?")
		args = append(args, value)
	}
	query := fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		ds.config.TableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
	_, err := ds.db.Exec(query, args...)
	return err
}

func (ds *SQLiteDatastore) Update(key string, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	sets := make([]string, 0, len(values))
	args := make([]interface{}, 0, len(values)+1)
	for column, value := range values {
		sets = append(sets, fmt.Sprintf("%s = ?", column))
		args = append(args, value)
	}
	args = append(args, key)
	res, err := ds.db.Exec(
		fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
			ds.config.TableName, strings.Join(sets, ", "), ds.config.PrimaryKeyColumnName),
		args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("key %s not exist in %s", key, ds.config.TableName)
	}
	return nil
}

func (ds *SQLiteDatastore) Delete(key string) error {
	_, err := ds.db.Exec(
		fmt.Sprintf(
			"DELETE FROM %s WHERE %s = ?", ds.config.TableName, ds.config.PrimaryKeyColumnName),
		key)
	return err
}

// ListAll columns empty means every column
func (ds *SQLiteDatastore) ListAll(columns []string) (map[string]map[string]interface{}, error) {
	selected := "*"
	if len(columns) > 0 {
		selected = strings.Join(append([]string{ds.config.PrimaryKeyColumnName}, columns...), ", ")
	}
	rows, err := ds.db.Query(fmt.Sprintf("SELECT %s FROM %s", selected, ds.config.TableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make(map[string]map[string]interface{})
	for rows.Next() {
		columnPointers := make([]interface{}, len(cols))
		for i, col := range cols {
			target, err := ds.scanTarget(col)
			if err != nil {
				return nil, err
			}
			columnPointers[i] = target
		}
		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		m := make(map[string]interface{}, len(cols))
		for i, colName := range cols {
			if v := nullValue(columnPointers[i]); v != nil {
				m[colName] = v
			}
		}
		key, _ := m[ds.config.PrimaryKeyColumnName].(string)
		if len(columns) > 0 {
			delete(m, ds.config.PrimaryKeyColumnName)
		}
		results[key] = m
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

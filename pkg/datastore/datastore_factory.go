package datastore

import (
	"fmt"

	config2 "github.com/devsapp/serverless-aml-controller/pkg/config"
)

type DatastoreFactory struct{}

func (f *DatastoreFactory) NewTable(dbType DatastoreType, tableName string) (Datastore, error) {
	if _, ok := tableColumns[tableName]; !ok {
		return nil, fmt.Errorf("unknown table %s", tableName)
	}
	switch dbType {
	case SQLite:
		return NewSQLiteDatastore(NewSQLiteConfig(tableName))
	case TableStore:
		return NewOtsDatastore(NewOtsConfig(tableName))
	}
	return nil, fmt.Errorf("not support db type=%s", dbType)
}

func NewSQLiteConfig(tableName string) *Config {
	config := &Config{
		Type:         SQLite,
		DBName:       config2.ConfigGlobal.DbSqlite,
		TableName:    tableName,
		ColumnConfig: make(map[string]string),
	}
	for i, col := range tableColumns[tableName] {
		if i == 0 {
			config.PrimaryKeyColumnName = col[0]
		}
		config.ColumnConfig[col[0]] = col[1]
	}
	return config
}

// NewOtsConfig the primary key lives in config.COLPK, only value columns
// are defined
func NewOtsConfig(tableName string) *Config {
	config := &Config{
		Type:                 TableStore,
		TableName:            tableName,
		ColumnConfig:         make(map[string]string),
		PrimaryKeyColumnName: config2.COLPK,
		TimeToAlive:          config2.ConfigGlobal.OtsTimeToAlive,
		MaxVersion:           config2.ConfigGlobal.OtsMaxVersion,
	}
	for _, col := range valueColumns(tableName) {
		config.ColumnConfig[col] = "TEXT"
	}
	return config
}

package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string, primaryKey ...string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}
	if len(primaryKey) > 0 {
		columns = append(columns,
			fmt.Sprintf("    PRIMARY KEY (%s)", strings.Join(primaryKey, ", ")))
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if col := t.Field(i).Tag.Get("db"); col != "" {
			res = append(res, col)
		}
	}
	return res
}

// AllTables returns DDL generators of all tables in creation order.
func AllTables() []DDLGenerator {
	return []DDLGenerator{
		Meta{},
		Entry{},
		EntryClassValue{},
		EntryClassText{},
		InflectionValue{},
	}
}

// Meta DDL methods
func (m Meta) TableDDL() string {
	return generateDDL(m, m.TableName())
}

func (m Meta) IndexDDL() []string {
	return []string{}
}

func (m Meta) TableName() string {
	return "lexicon_meta"
}

// Entry DDL methods
func (e Entry) TableDDL() string {
	return generateDDL(e, e.TableName())
}

func (e Entry) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_entries_headword ON entries(headword);",
		"CREATE INDEX IF NOT EXISTS idx_entries_type_id ON entries(type_id);",
	}
}

func (e Entry) TableName() string {
	return "entries"
}

// EntryClassValue DDL methods
func (cv EntryClassValue) TableDDL() string {
	return generateDDL(cv, cv.TableName(), "entry_id", "attribute_id")
}

func (cv EntryClassValue) IndexDDL() []string {
	return []string{}
}

func (cv EntryClassValue) TableName() string {
	return "entry_class_values"
}

// EntryClassText DDL methods
func (ct EntryClassText) TableDDL() string {
	return generateDDL(ct, ct.TableName(), "entry_id", "attribute_id")
}

func (ct EntryClassText) IndexDDL() []string {
	return []string{}
}

func (ct EntryClassText) TableName() string {
	return "entry_class_texts"
}

// InflectionValue DDL methods
func (iv InflectionValue) TableDDL() string {
	return generateDDL(iv, iv.TableName(), "entry_id", "combination_id")
}

func (iv InflectionValue) IndexDDL() []string {
	return []string{}
}

func (iv InflectionValue) TableName() string {
	return "inflection_values"
}

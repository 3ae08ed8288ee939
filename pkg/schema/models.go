// Package schema provides database models of a stored lexicon. The same
// models describe SQLite tables (through ddl tags) and PostgreSQL tables
// (through GORM AutoMigrate).
package schema

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Meta keeps a single row that describes the stored lexicon.
type Meta struct {
	// ID is always 1.
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY" gorm:"column:id;primaryKey;autoIncrement:false"`

	// LexiconID is the UUID of the lexicon.
	LexiconID string `db:"lexicon_id" ddl:"VARCHAR(36) NOT NULL" gorm:"column:lexicon_id;type:varchar(36);not null"`

	// Version of gnlex that saved the lexicon.
	Version string `db:"version" ddl:"VARCHAR(50) NOT NULL" gorm:"column:version;type:varchar(50);not null"`

	// SavedAt is the RFC 3339 time of the last save.
	SavedAt string `db:"saved_at" ddl:"VARCHAR(50) NOT NULL" gorm:"column:saved_at;type:varchar(50);not null"`
}

// Entry is a lexicon entry without its class values.
type Entry struct {
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY" gorm:"column:id;primaryKey;autoIncrement:false"`

	Headword string `db:"headword" ddl:"TEXT NOT NULL" gorm:"column:headword;not null;index"`

	Translation string `db:"translation" ddl:"TEXT NOT NULL DEFAULT ''" gorm:"column:translation;not null;default:''"`

	Definition string `db:"definition" ddl:"TEXT NOT NULL DEFAULT ''" gorm:"column:definition;not null;default:''"`

	// TypeID is 0 for untyped entries.
	TypeID int `db:"type_id" ddl:"INTEGER NOT NULL DEFAULT 0" gorm:"column:type_id;not null;default:0;index"`

	Pronunciation string `db:"pronunciation" ddl:"TEXT NOT NULL DEFAULT ''" gorm:"column:pronunciation;not null;default:''"`

	PronunciationOverride bool `db:"pronunciation_override" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" gorm:"column:pronunciation_override;not null;default:false"`

	RuleOverride bool `db:"rule_override" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" gorm:"column:rule_override;not null;default:false"`

	AutoInflectionOverride bool `db:"auto_inflection_override" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" gorm:"column:auto_inflection_override;not null;default:false"`
}

// EntryClassValue is an enumerated class value of an entry.
type EntryClassValue struct {
	EntryID     int `db:"entry_id" ddl:"INTEGER NOT NULL" gorm:"column:entry_id;primaryKey;autoIncrement:false"`
	AttributeID int `db:"attribute_id" ddl:"INTEGER NOT NULL" gorm:"column:attribute_id;primaryKey;autoIncrement:false"`
	ValueID     int `db:"value_id" ddl:"INTEGER NOT NULL" gorm:"column:value_id;not null"`
}

// EntryClassText is a free text class value of an entry.
type EntryClassText struct {
	EntryID     int    `db:"entry_id" ddl:"INTEGER NOT NULL" gorm:"column:entry_id;primaryKey;autoIncrement:false"`
	AttributeID int    `db:"attribute_id" ddl:"INTEGER NOT NULL" gorm:"column:attribute_id;primaryKey;autoIncrement:false"`
	Text        string `db:"text" ddl:"TEXT NOT NULL" gorm:"column:text;not null"`
}

// InflectionValue is an inflected form stored manually for an entry.
type InflectionValue struct {
	EntryID       int    `db:"entry_id" ddl:"INTEGER NOT NULL" gorm:"column:entry_id;primaryKey;autoIncrement:false"`
	CombinationID string `db:"combination_id" ddl:"VARCHAR(255) NOT NULL" gorm:"column:combination_id;type:varchar(255);primaryKey"`
	Value         string `db:"value" ddl:"TEXT NOT NULL" gorm:"column:value;not null"`
}

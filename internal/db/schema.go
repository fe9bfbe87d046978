package db

// SchemaSQL is the complete current schema: the state of a database after
// every migration has run. It is the single source of truth for tests -
// repository tests create in-memory databases from GetSchemaSQL() instead of
// hardcoding CREATE TABLE statements, so a repository referencing a column
// that no migration adds fails immediately with "no such column".
//
// Keep in sync with the migrations list: when adding a migration, fold its
// schema change into this constant.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	companyName TEXT,
	logo TEXT,
	managerName TEXT,
	signature TEXT,
	stamp TEXT,
	description TEXT,
	informations TEXT,
	storeId INTEGER
);

CREATE TABLE IF NOT EXISTS invoices (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	document_number TEXT,
	clientName TEXT NOT NULL,
	date TEXT NOT NULL,
	items TEXT NOT NULL,
	total REAL NOT NULL,
	storeId INTEGER,
	discountType TEXT,
	discountValue REAL,
	status TEXT
);

CREATE TABLE IF NOT EXISTS quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	document_number TEXT,
	clientName TEXT NOT NULL,
	date TEXT NOT NULL,
	items TEXT NOT NULL,
	total REAL NOT NULL,
	storeId INTEGER,
	discountType TEXT,
	discountValue REAL,
	status TEXT
);

CREATE TABLE IF NOT EXISTS delivery_notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	document_number TEXT,
	clientName TEXT NOT NULL,
	date TEXT NOT NULL,
	items TEXT NOT NULL,
	total INTEGER NOT NULL,
	order_reference TEXT,
	payment_method TEXT,
	storeId INTEGER
);

CREATE TABLE IF NOT EXISTS stores (
	storeId INTEGER PRIMARY KEY AUTOINCREMENT,
	ownerUserId INTEGER,
	name TEXT NOT NULL,
	logoUrl TEXT,
	documentTemplateId INTEGER,
	customTexts TEXT,
	status TEXT NOT NULL,
	signatureUrl TEXT,
	stampUrl TEXT
);

CREATE TABLE IF NOT EXISTS document_templates (
	templateId INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	htmlContent TEXT
);

CREATE TABLE IF NOT EXISTS db_versions (
	version INTEGER PRIMARY KEY
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}

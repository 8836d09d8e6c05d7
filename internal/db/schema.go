package db

// SchemaSQL is the complete modern schema for fresh installs. It reflects
// the state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL() so test schemas cannot drift from
// production: if repository code references a column that doesn't exist
// here, tests fail immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Cadets (tracked members, looked up externally by CAP ID)
CREATE TABLE IF NOT EXISTS cadets (
	cadet_id INTEGER PRIMARY KEY AUTOINCREMENT,
	cap_id INTEGER NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	date_of_birth TEXT,
	join_date TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Ranks (static ordered catalog; higher rank_order is more senior)
CREATE TABLE IF NOT EXISTS ranks (
	rank_id INTEGER PRIMARY KEY AUTOINCREMENT,
	rank_name TEXT NOT NULL,
	rank_order INTEGER NOT NULL UNIQUE
);

-- Rank awards (replace-semantics: at most one row per cadet in practice,
-- history is carried by awarded_on)
CREATE TABLE IF NOT EXISTS cadet_ranks (
	cadet_id INTEGER NOT NULL,
	rank_id INTEGER NOT NULL,
	awarded_on TEXT,
	UNIQUE(cadet_id, rank_id),
	FOREIGN KEY (cadet_id) REFERENCES cadets(cadet_id) ON DELETE CASCADE,
	FOREIGN KEY (rank_id) REFERENCES ranks(rank_id)
);

-- Requirements (criteria gating promotion)
CREATE TABLE IF NOT EXISTS requirements (
	requirement_id INTEGER PRIMARY KEY AUTOINCREMENT,
	requirement_name TEXT NOT NULL,
	description TEXT
);

-- Rank <-> requirement links (many-to-many)
CREATE TABLE IF NOT EXISTS rank_requirements (
	rank_id INTEGER NOT NULL,
	requirement_id INTEGER NOT NULL,
	UNIQUE(rank_id, requirement_id),
	FOREIGN KEY (rank_id) REFERENCES ranks(rank_id) ON DELETE CASCADE,
	FOREIGN KEY (requirement_id) REFERENCES requirements(requirement_id) ON DELETE CASCADE
);

-- Completion records (presence means satisfied; toggle inserts/deletes)
CREATE TABLE IF NOT EXISTS requirement_completions (
	cadet_id INTEGER NOT NULL,
	requirement_id INTEGER NOT NULL,
	date_completed TEXT NOT NULL,
	UNIQUE(cadet_id, requirement_id),
	FOREIGN KEY (cadet_id) REFERENCES cadets(cadet_id) ON DELETE CASCADE,
	FOREIGN KEY (requirement_id) REFERENCES requirements(requirement_id) ON DELETE CASCADE
);

-- Inspection headers (one per cadet per date, updated in place on resubmit)
CREATE TABLE IF NOT EXISTS inspections (
	inspection_id INTEGER PRIMARY KEY AUTOINCREMENT,
	cadet_id INTEGER NOT NULL,
	inspector_cap_id INTEGER,
	inspection_date TEXT NOT NULL,
	total_score INTEGER NOT NULL,
	rating TEXT NOT NULL,
	comments TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(cadet_id, inspection_date),
	FOREIGN KEY (cadet_id) REFERENCES cadets(cadet_id) ON DELETE CASCADE
);

-- Per-item inspection breakdown (added in migration v2; legacy databases
-- without this table persist only the aggregate)
CREATE TABLE IF NOT EXISTS inspection_scores (
	score_id INTEGER PRIMARY KEY AUTOINCREMENT,
	inspection_id INTEGER NOT NULL,
	section TEXT NOT NULL,
	item_name TEXT NOT NULL,
	score INTEGER NOT NULL CHECK(score BETWEEN 0 AND 3),
	comment TEXT,
	FOREIGN KEY (inspection_id) REFERENCES inspections(inspection_id) ON DELETE CASCADE
);

-- Positions (line/staff and support duty positions)
CREATE TABLE IF NOT EXISTS positions (
	position_id INTEGER PRIMARY KEY AUTOINCREMENT,
	position_name TEXT NOT NULL UNIQUE,
	line INTEGER NOT NULL DEFAULT 0,
	level INTEGER
);

-- Position assignments (open-ended until end_date is set)
CREATE TABLE IF NOT EXISTS cadet_positions (
	assignment_id INTEGER PRIMARY KEY AUTOINCREMENT,
	cadet_id INTEGER NOT NULL,
	position_id INTEGER NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT,
	FOREIGN KEY (cadet_id) REFERENCES cadets(cadet_id) ON DELETE CASCADE,
	FOREIGN KEY (position_id) REFERENCES positions(position_id)
);

-- Incident reports
CREATE TABLE IF NOT EXISTS reports (
	report_id INTEGER PRIMARY KEY AUTOINCREMENT,
	cadet_id INTEGER NOT NULL,
	report_type TEXT NOT NULL CHECK(report_type IN ('Good', 'Bad')),
	description TEXT,
	created_by TEXT,
	incident_date TEXT,
	resolved INTEGER NOT NULL DEFAULT 0,
	resolved_by TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (cadet_id) REFERENCES cadets(cadet_id) ON DELETE CASCADE
);

-- Audit log (record changes; failures here never fail the operation)
CREATE TABLE IF NOT EXISTS audit_log (
	log_id INTEGER PRIMARY KEY AUTOINCREMENT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL,
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema for tests and InitSchema.
func GetSchemaSQL() string {
	return SchemaSQL
}

package store

// schemaDDL creates all tables on first open. Statements are idempotent
// so Open can run them on every start.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS topics (
	id                TEXT PRIMARY KEY,
	subject           TEXT NOT NULL,
	name              TEXT NOT NULL,
	parent_id         TEXT REFERENCES topics(id),
	estimated_minutes INTEGER NOT NULL DEFAULT 30,
	priority          INTEGER NOT NULL DEFAULT 5 CHECK (priority BETWEEN 1 AND 10)
);

CREATE TABLE IF NOT EXISTS topic_progress (
	topic_id         TEXT PRIMARY KEY REFERENCES topics(id),
	status           TEXT NOT NULL DEFAULT 'unseen',
	confidence       INTEGER NOT NULL DEFAULT 0,
	last_studied_at  TIMESTAMP,
	times_studied    INTEGER NOT NULL DEFAULT 0,
	xp_earned        INTEGER NOT NULL DEFAULT 0,
	next_review_date TIMESTAMP,
	nemesis          INTEGER NOT NULL DEFAULT 0,
	wrong_count      INTEGER NOT NULL DEFAULT 0,
	fsrs_due         TIMESTAMP,
	stability        REAL NOT NULL DEFAULT 0,
	difficulty       REAL NOT NULL DEFAULT 0,
	elapsed_days     INTEGER NOT NULL DEFAULT 0,
	scheduled_days   INTEGER NOT NULL DEFAULT 0,
	reps             INTEGER NOT NULL DEFAULT 0,
	lapses           INTEGER NOT NULL DEFAULT 0,
	fsrs_state       INTEGER NOT NULL DEFAULT 0,
	last_review      TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sessions (
	id               TEXT PRIMARY KEY,
	mood             TEXT NOT NULL,
	mode             TEXT NOT NULL,
	planned_topics   TEXT NOT NULL DEFAULT '[]',
	completed_topics TEXT NOT NULL DEFAULT '[]',
	started_at       TIMESTAMP NOT NULL,
	ended_at         TIMESTAMP,
	xp_earned        INTEGER NOT NULL DEFAULT 0,
	duration_minutes INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS profile (
	id                        INTEGER PRIMARY KEY CHECK (id = 1),
	daily_goal_minutes        INTEGER NOT NULL DEFAULT 120,
	preferred_session_minutes INTEGER NOT NULL DEFAULT 45,
	exam_date                 TIMESTAMP,
	streak_days               INTEGER NOT NULL DEFAULT 0,
	last_active_at            TIMESTAMP
);

CREATE TABLE IF NOT EXISTS llm_requests (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	purpose       TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	latency_ms    INTEGER NOT NULL DEFAULT 0,
	success       INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_progress_next_review ON topic_progress(next_review_date);
CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at);
`

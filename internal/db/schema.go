package db

// SQL schema and statements for the session telemetry store.

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	name TEXT NOT NULL,
	attrs TEXT NOT NULL DEFAULT '{}',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
CREATE INDEX IF NOT EXISTS idx_events_name ON events(session_id, name);
`

const insertEvent = `
INSERT INTO events (session_id, name, attrs, created_at)
VALUES (?, ?, ?, ?)
`

const selectEventCounts = `
SELECT name, COUNT(*) AS count
FROM events
WHERE session_id = ?
GROUP BY name
ORDER BY name
`

const selectTotalEvents = `
SELECT COUNT(*) FROM events WHERE session_id = ?
`

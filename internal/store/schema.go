package store

const Schema = `
CREATE TABLE IF NOT EXISTS tracks (
	id TEXT PRIMARY KEY,
	artist TEXT NOT NULL,
	title TEXT NOT NULL
);

-- position is a global insertion counter: loading replays edges in the order
-- they were confirmed, which keeps successor order stable across round-trips.
CREATE TABLE IF NOT EXISTS transitions (
	source_id TEXT NOT NULL,
	dest_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (source_id, dest_id),
	FOREIGN KEY (source_id) REFERENCES tracks(id),
	FOREIGN KEY (dest_id) REFERENCES tracks(id)
);

CREATE INDEX IF NOT EXISTS idx_transitions_position ON transitions(position);

CREATE TABLE IF NOT EXISTS sessions (
	session_id TEXT PRIMARY KEY,
	processed_date DATETIME NOT NULL,
	run_id TEXT NOT NULL
);
`

// Package storage handles database connections, schema migrations, and the
// query history using SQLite.
package storage

import (
	"database/sql"
	"time"

	"github.com/mcpetools/motd"
	_ "modernc.org/sqlite" // Driver sqlite
)

// Repository manages the SQLite database connection.
type Repository struct {
	db *sql.DB
}

// Record represents one queried server as stored in the history.
type Record struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Address   string
	Status    motd.ServerStatus
	Uptime    int64
	GUID      int64
	Complete  bool
	Count     int64
}

// New initializes a new SQLite connection, sets connection pool parameters,
// and runs migrations.
func New(dbPath string) (*Repository, error) {
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(1 * time.Hour)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// RecordPing inserts the result of querying address or updates the existing
// row, bumping the query count and the last seen timestamp.
func (r *Repository) RecordPing(address string, pong *motd.Pong) error {
	query := `
	INSERT INTO pings (
		address, edition, motd, protocol_version, version_name,
		players, max_players, server_id, level_name, gamemode, gamemode_num,
		port_v4, port_v6, server_guid, uptime_ms, complete,
		count, first_seen, last_seen
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
	ON CONFLICT(address) DO UPDATE SET
		count = count + 1,
		last_seen = excluded.last_seen,
		edition = excluded.edition,
		motd = excluded.motd,
		protocol_version = excluded.protocol_version,
		version_name = excluded.version_name,
		players = excluded.players,
		max_players = excluded.max_players,
		server_id = excluded.server_id,
		level_name = excluded.level_name,
		gamemode = excluded.gamemode,
		gamemode_num = excluded.gamemode_num,
		port_v4 = excluded.port_v4,
		port_v6 = excluded.port_v6,
		server_guid = excluded.server_guid,
		uptime_ms = excluded.uptime_ms,
		complete = excluded.complete;
	`

	now := time.Now().UTC()
	status := pong.Status
	_, err := r.db.Exec(query,
		address, status.Edition, status.MOTD, status.ProtocolVersion, status.VersionName,
		status.PlayerCount, status.MaxPlayerCount, status.ServerID, status.LevelName, status.GameMode, status.GameModeNumeric,
		status.PortV4, status.PortV6, pong.ServerGUID, pong.Uptime, pong.StatusOK,
		now, now,
	)

	return err
}

// Recent retrieves up to limit servers from the history, sorted by the last
// seen timestamp in descending order.
func (r *Repository) Recent(limit int) ([]Record, error) {
	rows, err := r.db.Query(`
		SELECT address, edition, motd, protocol_version, version_name,
		       players, max_players, server_id, level_name, gamemode, gamemode_num,
		       port_v4, port_v6, server_guid, uptime_ms, complete,
		       count, first_seen, last_seen
		FROM pings
		ORDER BY last_seen DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.Address, &rec.Status.Edition, &rec.Status.MOTD, &rec.Status.ProtocolVersion, &rec.Status.VersionName,
			&rec.Status.PlayerCount, &rec.Status.MaxPlayerCount, &rec.Status.ServerID, &rec.Status.LevelName, &rec.Status.GameMode, &rec.Status.GameModeNumeric,
			&rec.Status.PortV4, &rec.Status.PortV6, &rec.GUID, &rec.Uptime, &rec.Complete,
			&rec.Count, &rec.FirstSeen, &rec.LastSeen,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Package storage keeps experiment results in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"solar/algorithm"
	"solar/experiments/metrics"
)

// Store manages the SQLite database connection for experiment results.
type Store struct {
	db *sql.DB
}

// Experiment is a stored experiment run.
type Experiment struct {
	ID        uuid.UUID
	Name      string
	Seed      int64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS experiments (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS agents (
			experiment_id TEXT NOT NULL REFERENCES experiments(id),
			agent_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			cell_calculator TEXT NOT NULL,
			cursor_initializer TEXT NOT NULL,
			move_proposer TEXT NOT NULL,
			offset_seed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (experiment_id, agent_id)
		);

		CREATE TABLE IF NOT EXISTS games (
			experiment_id TEXT NOT NULL REFERENCES experiments(id),
			game_id INTEGER NOT NULL,
			agent0 INTEGER NOT NULL,
			agent1 INTEGER NOT NULL,
			score0 INTEGER NOT NULL,
			score1 INTEGER NOT NULL,
			board0 INTEGER NOT NULL,
			board1 INTEGER NOT NULL,
			winner INTEGER NOT NULL,
			total_moves INTEGER NOT NULL,
			rejections INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			PRIMARY KEY (experiment_id, game_id)
		);
		CREATE INDEX IF NOT EXISTS idx_games_agents ON games(experiment_id, agent0, agent1);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateExperiment records a new experiment run and returns its ID.
func (s *Store) CreateExperiment(name string, seed int64) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.Exec(
		"INSERT INTO experiments (id, name, seed) VALUES (?, ?, ?)",
		id.String(), name, seed,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save experiment: %w", err)
	}
	return id, nil
}

// SaveAgents records the agent configurations of an experiment.
func (s *Store) SaveAgents(experimentID uuid.UUID, agents []metrics.AgentConfig) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, agent := range agents {
		_, err := tx.Exec(
			`INSERT INTO agents (experiment_id, agent_id, name, cell_calculator, cursor_initializer, move_proposer, offset_seed)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			experimentID.String(), agent.ID, agent.Name,
			string(agent.Parameters.CellCalculator),
			string(agent.Parameters.CursorInitializer),
			string(agent.Parameters.MoveProposer),
			agent.Parameters.OffsetSeed,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save agent %d: %w", agent.ID, err)
		}
	}
	return tx.Commit()
}

// Agents returns the agent configurations of an experiment ordered by ID.
func (s *Store) Agents(experimentID uuid.UUID) ([]metrics.AgentConfig, error) {
	rows, err := s.db.Query(
		`SELECT agent_id, name, cell_calculator, cursor_initializer, move_proposer, offset_seed
		 FROM agents
		 WHERE experiment_id = ?
		 ORDER BY agent_id`,
		experimentID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query agents: %w", err)
	}
	defer rows.Close()

	var agents []metrics.AgentConfig
	for rows.Next() {
		var a metrics.AgentConfig
		var calculator, cursor, proposer string
		if err := rows.Scan(&a.ID, &a.Name, &calculator, &cursor, &proposer, &a.Parameters.OffsetSeed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan agent: %w", err)
		}
		a.Parameters.CellCalculator = algorithm.CellCalculatorKind(calculator)
		a.Parameters.CursorInitializer = algorithm.CursorInitializerKind(cursor)
		a.Parameters.MoveProposer = algorithm.MoveProposerKind(proposer)
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

// SaveGames records finished games of an experiment.
func (s *Store) SaveGames(experimentID uuid.UUID, records []metrics.GameRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range records {
		_, err := tx.Exec(
			`INSERT INTO games (experiment_id, game_id, agent0, agent1, score0, score1, board0, board1,
			                    winner, total_moves, rejections, duration_ns)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			experimentID.String(), r.ID, r.Agent0, r.Agent1, r.Player0Score, r.Player1Score,
			r.Player0Board, r.Player1Board, r.Winner, r.TotalMoves, r.Rejections, int64(r.Duration),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save game %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// Experiments lists stored experiments, newest first.
func (s *Store) Experiments() ([]Experiment, error) {
	rows, err := s.db.Query(`SELECT id, name, seed, created_at FROM experiments ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query experiments: %w", err)
	}
	defer rows.Close()

	var experiments []Experiment
	for rows.Next() {
		var e Experiment
		var id string
		if err := rows.Scan(&id, &e.Name, &e.Seed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan experiment: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: malformed experiment id %q: %w", id, err)
		}
		experiments = append(experiments, e)
	}
	return experiments, rows.Err()
}

// Games returns the stored games of an experiment in play order.
func (s *Store) Games(experimentID uuid.UUID) ([]metrics.GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT game_id, agent0, agent1, score0, score1, board0, board1, winner, total_moves, rejections, duration_ns
		 FROM games
		 WHERE experiment_id = ?
		 ORDER BY game_id`,
		experimentID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []metrics.GameRecord
	for rows.Next() {
		var r metrics.GameRecord
		var duration int64
		err := rows.Scan(&r.ID, &r.Agent0, &r.Agent1, &r.Player0Score, &r.Player1Score,
			&r.Player0Board, &r.Player1Board, &r.Winner, &r.TotalMoves, &r.Rejections, &duration)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan game: %w", err)
		}
		r.Duration = time.Duration(duration)
		records = append(records, r)
	}
	return records, rows.Err()
}

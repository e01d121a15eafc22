package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"solar/algorithm"
	"solar/config"
	"solar/engine"
	"solar/experiments/metrics"
	"solar/storage"
)

// Result is everything an experiment produced.
type Result struct {
	ID        uuid.UUID // Set when results were stored in SQLite
	Dir       string    // Set when results were written as CSV
	Seed      int64
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.Summary // One per matchup
}

// Run plays the configured number of games for every matchup. Seats swap on
// every other game since moving first is an advantage.
func Run(cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Experiment.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	result := &Result{Seed: seed}
	name := cfg.Experiment.Name

	log.Info().Msgf("starting %s experiment with seed %d...", name, seed)

	count := 0
	for mi, matchup := range cfg.Matchups {
		agent1, _ := cfg.Agent(matchup[0])
		agent2, _ := cfg.Agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent %d (%s) and agent %d (%s)...",
			mi+1, len(cfg.Matchups), agent1.ID, agent1.Label(), agent2.ID, agent2.Label())

		matchupRecords := []metrics.GameRecord{}
		for i := 0; i < cfg.Experiment.Games; i++ {
			seat0, seat1 := agent1, agent2
			if i%2 == 1 {
				seat0, seat1 = agent2, agent1
			}

			count++
			e, err := NewGame(cfg, seat0, seat1, seed+int64(2*count))
			if err != nil {
				return nil, err
			}
			gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			record := metrics.GameRecord{
				ID:         count,
				Agent0:     seat0.ID,
				Agent1:     seat1.ID,
				GameMetric: gameMetric,
			}
			matchupRecords = append(matchupRecords, record)
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d game %d: board %d-%d (cumulative %d-%d)", mi+1, i+1,
				gameMetric.Player0Board, gameMetric.Player1Board, gameMetric.Player0Score, gameMetric.Player1Score)
		}

		summary := metrics.Summarize(agent1.ID, agent2.ID, matchupRecords)
		result.Summaries = append(result.Summaries, summary)
		result.Games = append(result.Games, matchupRecords...)
		log.Info().Msgf("completed matchup %d of %d\n%s", mi+1, len(cfg.Matchups), summary)
	}

	log.Info().Msgf("completed %s experiment", name)

	agentConfigs, err := agentConfigs(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Experiment.OutputDir != "" {
		if result.Dir, err = writeCSV(cfg, agentConfigs, result); err != nil {
			return result, err
		}
	}
	if cfg.Experiment.Database != "" {
		if result.ID, err = store(cfg, seed, agentConfigs, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// NewGame sets up an engine for one game between two agents. The seat 1
// agent is seeded with seed+1.
func NewGame(cfg config.Config, seat0, seat1 config.AgentConfig, seed int64) (*engine.Engine, error) {
	g, err := cfg.Game.NewGame()
	if err != nil {
		return nil, err
	}

	agents := make([]engine.Agent, 0, 2)
	for i, agent := range []config.AgentConfig{seat0, seat1} {
		params, err := agent.Parameters()
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		alg, err := algorithm.New(cfg.Game.GameParameters(), params,
			algorithm.WithSeed(seed+int64(i)), algorithm.WithName(agent.Label()))
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		agents = append(agents, alg)
	}

	return engine.LocalEngine(g, agents,
		engine.WithTurns(cfg.Game.Turns),
		engine.WithMaxRetries(cfg.Engine.MaxRetries),
		engine.WithMetrics(),
	), nil
}

func agentConfigs(cfg config.Config) ([]metrics.AgentConfig, error) {
	configs := make([]metrics.AgentConfig, 0, len(cfg.Agents))
	for _, agent := range cfg.Agents {
		params, err := agent.Parameters()
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		configs = append(configs, metrics.AgentConfig{ID: agent.ID, Name: agent.Label(), Parameters: params})
	}
	return configs, nil
}

func writeCSV(cfg config.Config, configs []metrics.AgentConfig, result *Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, cfg.Experiment.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func store(cfg config.Config, seed int64, configs []metrics.AgentConfig, result *Result) (uuid.UUID, error) {
	s, err := storage.Open(cfg.Experiment.Database)
	if err != nil {
		return uuid.Nil, err
	}
	defer s.Close()

	id, err := s.CreateExperiment(cfg.Experiment.Name, seed)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.SaveAgents(id, configs); err != nil {
		return id, err
	}
	if err := s.SaveGames(id, result.Games); err != nil {
		return id, err
	}

	log.Info().Msgf("stored experiment %s in %s", id, cfg.Experiment.Database)
	return id, nil
}

package metrics

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Summary aggregates the games of a matchup per agent, regardless of seat.
type Summary struct {
	Agents      [2]int              // AgentConfig.IDs of the matchup
	ScoreCounts map[int]map[int]int // Agent ID -> final board score -> number of games
	Wins        map[int]int         // Agent ID -> games won
	Draws       int
	Games       int
}

// Summarize tallies final board scores and winners for the agents a and b.
func Summarize(a, b int, records []GameRecord) Summary {
	s := Summary{
		Agents:      [2]int{a, b},
		ScoreCounts: map[int]map[int]int{a: {}, b: {}},
		Wins:        map[int]int{a: 0, b: 0},
	}
	for _, r := range records {
		s.Games++
		s.ScoreCounts[r.Agent0][r.Player0Board]++
		s.ScoreCounts[r.Agent1][r.Player1Board]++
		switch r.Winner {
		case 0:
			s.Wins[r.Agent0]++
		case 1:
			s.Wins[r.Agent1]++
		default:
			s.Draws++
		}
	}
	return s
}

// ScoreDistribution formats an agent's scores as "score:count" pairs, lowest score first.
func (s Summary) ScoreDistribution(agent int) string {
	counts := s.ScoreCounts[agent]
	scores := make([]int, 0, len(counts))
	for score := range counts {
		scores = append(scores, score)
	}
	slices.Sort(scores)

	pairs := make([]string, 0, len(scores))
	for _, score := range scores {
		pairs = append(pairs, fmt.Sprintf("%d:%d", score, counts[score]))
	}
	return strings.Join(pairs, ", ")
}

func (s Summary) String() string {
	var sb strings.Builder
	for _, agent := range s.Agents {
		fmt.Fprintf(&sb, "Agent %d (score: count) -- %s\n", agent, s.ScoreDistribution(agent))
	}
	fmt.Fprintf(&sb, "Win counts (agent: count) -- %d: %d, %d: %d, draw: %d",
		s.Agents[0], s.Wins[s.Agents[0]], s.Agents[1], s.Wins[s.Agents[1]], s.Draws)
	return sb.String()
}

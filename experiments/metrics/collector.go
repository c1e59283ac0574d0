package metrics

import (
	"time"

	"circles/game"

	"github.com/google/uuid"
)

type TurnMetric struct {
	Turn    int
	Pairing game.Pairing
	Value   int
	Cell    int
	Links   int
}

type GameMetric struct {
	GameID        uuid.UUID
	Turns         int
	PathTotal     int
	PathsComplete bool // false when a path tail had no value
	MapTotal      int
	Maps          int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

type Collector interface {
	Start(gameID uuid.UUID)
	AddTurn(turn TurnMetric)
	Complete(scores *game.Scores) (GameMetric, []TurnMetric)
}

type collector struct {
	gameID    uuid.UUID
	startTime time.Time
	turns     []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID uuid.UUID) {
	m.gameID = gameID
	m.startTime = time.Now()
	m.turns = nil
}

func (m *collector) AddTurn(turn TurnMetric) {
	m.turns = append(m.turns, turn)
}

func (m *collector) Complete(scores *game.Scores) (GameMetric, []TurnMetric) {
	end := time.Now()
	metric := GameMetric{
		GameID:    m.gameID,
		Turns:     len(m.turns),
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
	}
	if paths, err := scores.ScorePaths(); err == nil {
		metric.PathTotal = paths.Total
		metric.PathsComplete = true
	}
	maps := scores.ScoreMaps()
	metric.MapTotal = maps.Total
	metric.Maps = len(maps.Points)
	return metric, m.turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID uuid.UUID) {}
func (m *dummyCollector) AddTurn(turn TurnMetric) {}
func (m *dummyCollector) Complete(scores *game.Scores) (GameMetric, []TurnMetric) {
	return GameMetric{}, nil
}

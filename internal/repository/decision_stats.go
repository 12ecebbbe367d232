package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	decisionStatsKey = "decision_stats"
	decisionNodesKey = "decision_nodes"
)

// DecisionStat counts the engine decisions served for one strategy and depth.
type DecisionStat struct {
	Strategy  string `json:"strategy"`
	Depth     int    `json:"depth"`
	Decisions int64  `json:"decisions"`
	Nodes     int64  `json:"nodes"`
}

// DecisionStats keeps counters of served engine decisions.
type DecisionStats interface {
	// Record adds one decision that visited nodes search nodes.
	Record(ctx context.Context, strategy string, depth int, nodes int) error

	// Get returns all counters, sorted by strategy and depth.
	Get(ctx context.Context) ([]DecisionStat, error)
}

// NewDecisionStats returns a Redis backed store, or an in-memory one when client is nil.
func NewDecisionStats(client *redis.Client) DecisionStats {
	if client == nil {
		return NewMemoryDecisionStats()
	}
	return NewRedisDecisionStats(client)
}

func statField(strategy string, depth int) string {
	return fmt.Sprintf("%s:%d", strategy, depth)
}

// parseStatField parses "<strategy>:<depth>".
func parseStatField(field string) (string, int, error) {
	index := strings.LastIndex(field, ":")
	if index < 0 {
		return "", 0, fmt.Errorf("missing separator in %q", field)
	}

	depth, err := strconv.Atoi(field[index+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid depth in %q: %w", field, err)
	}

	return field[:index], depth, nil
}

func sortStats(stats []DecisionStat) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Strategy != stats[j].Strategy {
			return stats[i].Strategy < stats[j].Strategy
		}
		return stats[i].Depth < stats[j].Depth
	})
}

// RedisDecisionStats stores counters in two Redis hashes, keyed by strategy and depth.
type RedisDecisionStats struct {
	redis *redis.Client
}

func NewRedisDecisionStats(client *redis.Client) *RedisDecisionStats {
	return &RedisDecisionStats{redis: client}
}

func (r *RedisDecisionStats) Record(ctx context.Context, strategy string, depth int, nodes int) error {
	field := statField(strategy, depth)

	pipe := r.redis.Pipeline()
	pipe.HIncrBy(ctx, decisionStatsKey, field, 1)
	pipe.HIncrBy(ctx, decisionNodesKey, field, int64(nodes))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error updating decision stats in Redis: %w", err)
	}

	return nil
}

func (r *RedisDecisionStats) Get(ctx context.Context) ([]DecisionStat, error) {
	decisions, err := r.redis.HGetAll(ctx, decisionStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting decision stats from Redis: %w", err)
	}

	nodes, err := r.redis.HGetAll(ctx, decisionNodesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting decision nodes from Redis: %w", err)
	}

	stats := make([]DecisionStat, 0, len(decisions))

	for field, value := range decisions {
		var stat DecisionStat

		stat.Strategy, stat.Depth, err = parseStatField(field)
		if err != nil {
			return nil, fmt.Errorf("error parsing decision stats key: %w", err)
		}

		stat.Decisions, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing decision stats value: %w", err)
		}

		// Missing when the pipeline was interrupted, keep the count anyway.
		if nodeValue, ok := nodes[field]; ok {
			stat.Nodes, err = strconv.ParseInt(nodeValue, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing decision nodes value: %w", err)
			}
		}

		stats = append(stats, stat)
	}

	sortStats(stats)
	return stats, nil
}

type statKey struct {
	strategy string
	depth    int
}

// MemoryDecisionStats keeps counters in memory, for servers without Redis.
type MemoryDecisionStats struct {
	// data stores the counters
	data map[statKey]DecisionStat

	// dataMutex protects data
	dataMutex sync.Mutex
}

func NewMemoryDecisionStats() *MemoryDecisionStats {
	return &MemoryDecisionStats{
		data: make(map[statKey]DecisionStat),
	}
}

func (m *MemoryDecisionStats) Record(_ context.Context, strategy string, depth int, nodes int) error {
	m.dataMutex.Lock()
	defer m.dataMutex.Unlock()

	key := statKey{strategy: strategy, depth: depth}

	stat, ok := m.data[key]
	if !ok {
		stat = DecisionStat{Strategy: strategy, Depth: depth}
	}

	stat.Decisions++
	stat.Nodes += int64(nodes)
	m.data[key] = stat

	return nil
}

func (m *MemoryDecisionStats) Get(_ context.Context) ([]DecisionStat, error) {
	m.dataMutex.Lock()
	defer m.dataMutex.Unlock()

	stats := make([]DecisionStat, 0, len(m.data))
	for _, stat := range m.data {
		stats = append(stats, stat)
	}

	sortStats(stats)
	return stats, nil
}

// internal/benchmark/store.go
package benchmark

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/models"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

const (
	movingAverageCacheKey = "benchmark:moving-average"
	movingAverageCacheTTL = 5 * time.Minute

	// movingAverageWindow bounds how many recent assessments feed the
	// rolling baseline.
	movingAverageWindow = 100
)

// Store resolves baselines and records assessments. Static tables are served
// from memory; the moving-average baseline is computed from the assessments
// table and cached in Redis.
//
// RecordAssessment and the baseline recompute are serialized by a single
// writer lock so two concurrent submissions cannot interleave an insert with
// a stale recompute.
type Store struct {
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger

	mu sync.Mutex
}

// NewStore creates a benchmark store. The Redis client may be nil, in which
// case the moving average is recomputed on every request.
func NewStore(db *sql.DB, rdb *redis.Client, log logger.Logger) *Store {
	return &Store{
		db:     db,
		redis:  rdb,
		logger: log.WithFields(map[string]interface{}{"component": "benchmark-store"}),
	}
}

// GetBaseline resolves a benchmark by name. Unknown names fall back to the
// default static baseline; the moving-average name delegates to the rolling
// computation. Lookup never surfaces an error for a bad name.
func (s *Store) GetBaseline(ctx context.Context, name string) (Benchmark, error) {
	if name == MovingAverageBenchmarkName {
		return s.GetMovingAverageBaseline(ctx)
	}
	return StaticBenchmark(name), nil
}

// GetMovingAverageBaseline returns the rolling baseline over recent stored
// assessments, excluding degenerate all-minimum / all-maximum submissions so
// a single pathological run cannot skew the shared baseline. With no usable
// history it falls back to the default static table.
func (s *Store) GetMovingAverageBaseline(ctx context.Context) (Benchmark, error) {
	if cached, ok := s.cachedBaseline(ctx); ok {
		return cached, nil
	}

	// Recompute under the writer lock. Without it a concurrent
	// RecordAssessment could insert and invalidate the cache between our
	// read and our cache write, leaving a stale baseline cached for a full
	// TTL.
	s.mu.Lock()
	defer s.mu.Unlock()

	// A racing recompute may have filled the cache while we waited.
	if cached, ok := s.cachedBaseline(ctx); ok {
		return cached, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT dimension_scores FROM assessments ORDER BY completed_at DESC LIMIT $1`,
		movingAverageWindow)
	if err != nil {
		return Benchmark{}, fmt.Errorf("query assessment history: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]float64)
	counted := 0
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return Benchmark{}, fmt.Errorf("scan assessment row: %w", err)
		}
		var scores map[string]float64
		if err := json.Unmarshal(raw, &scores); err != nil {
			s.logger.Warn("skipping assessment with malformed dimension scores", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		if len(scores) == 0 || isDegenerate(scores) {
			continue
		}
		for id, v := range scores {
			sums[id] += v
		}
		counted++
	}
	if err := rows.Err(); err != nil {
		return Benchmark{}, fmt.Errorf("iterate assessment history: %w", err)
	}

	if counted == 0 {
		s.logger.Info("no usable assessment history, falling back to static baseline", nil)
		return StaticBenchmark(DefaultBenchmarkName), nil
	}

	baseline := Benchmark{
		Name:         MovingAverageBenchmarkName,
		Description:  fmt.Sprintf("Rolling average over the last %d recorded assessments", counted),
		PerDimension: make(map[string]float64, len(sums)),
	}
	for id, sum := range sums {
		avg := math.Round(sum/float64(counted)*100) / 100
		baseline.PerDimension[id] = avg
		baseline.Total += avg
	}
	baseline.Total = math.Round(baseline.Total*100) / 100

	s.cacheBaseline(ctx, baseline)
	return baseline, nil
}

// RecordAssessment persists a scored assessment and invalidates the cached
// moving average so the next baseline read sees it.
func (s *Store) RecordAssessment(ctx context.Context, a models.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scoresJSON, err := json.Marshal(a.DimensionScores)
	if err != nil {
		return fmt.Errorf("marshal dimension scores: %w", err)
	}
	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, company_name, total, percentage, band, band_capped, dimension_scores, answers, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.CompanyName, a.Total, a.Percentage, a.Band, a.BandCapped,
		scoresJSON, answersJSON, a.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}

	if s.redis != nil {
		if err := s.redis.Del(ctx, movingAverageCacheKey).Err(); err != nil {
			s.logger.Warn("failed to invalidate moving average cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return nil
}

// History returns the most recent assessments for a company, newest first.
func (s *Store) History(ctx context.Context, companyName string, limit int) ([]models.Assessment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_name, total, percentage, band, band_capped, dimension_scores, completed_at
		 FROM assessments WHERE company_name = $1 ORDER BY completed_at DESC LIMIT $2`,
		companyName, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []models.Assessment
	for rows.Next() {
		var a models.Assessment
		var scoresRaw []byte
		if err := rows.Scan(&a.ID, &a.CompanyName, &a.Total, &a.Percentage,
			&a.Band, &a.BandCapped, &scoresRaw, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if err := json.Unmarshal(scoresRaw, &a.DimensionScores); err != nil {
			return nil, fmt.Errorf("decode dimension scores: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// isDegenerate reports whether every dimension sits at the scale minimum or
// every dimension sits at the scale maximum. Those are straight-lined
// submissions, not signal.
func isDegenerate(scores map[string]float64) bool {
	allMin, allMax := true, true
	for _, v := range scores {
		if v > scoring.MinAnswer {
			allMin = false
		}
		if v < scoring.MaxAnswer {
			allMax = false
		}
	}
	return allMin || allMax
}

func (s *Store) cachedBaseline(ctx context.Context) (Benchmark, bool) {
	if s.redis == nil {
		return Benchmark{}, false
	}
	val, err := s.redis.Get(ctx, movingAverageCacheKey).Result()
	if err != nil {
		return Benchmark{}, false
	}
	var b Benchmark
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return Benchmark{}, false
	}
	return b, true
}

func (s *Store) cacheBaseline(ctx context.Context, b Benchmark) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, movingAverageCacheKey, data, movingAverageCacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache moving average baseline", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

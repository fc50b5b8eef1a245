// Package health runs dependency checks behind the health, readiness,
// and liveness endpoints.
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/schedule"
)

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Check is the result of probing one dependency.
type Check struct {
	Name      string            `json:"name"`
	Status    Status            `json:"status"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Duration  time.Duration     `json:"duration"`
	Timestamp time.Time         `json:"timestamp"`
}

// HealthReport aggregates the checks into one service-level status.
type HealthReport struct {
	Status    Status           `json:"status"`
	Version   string           `json:"version"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
	Uptime    time.Duration    `json:"uptime"`
}

type Checker interface {
	Check(ctx context.Context) Check
}

// probe runs fn and folds its outcome into a finished Check.
func probe(ctx context.Context, name string, fn func(ctx context.Context) (string, error)) Check {
	start := time.Now()
	check := Check{
		Name:      name,
		Timestamp: start,
		Details:   make(map[string]string),
	}

	msg, err := fn(ctx)
	check.Duration = time.Since(start)

	if err != nil {
		check.Status = StatusDown
		check.Message = msg
		check.Details["error"] = err.Error()
		return check
	}
	check.Status = StatusUp
	check.Message = msg
	check.Details["response_time"] = check.Duration.String()
	return check
}

// PostgresChecker pings the trip database.
type PostgresChecker struct {
	DB   *db.PostgresDB
	Name string
}

func (c *PostgresChecker) Check(ctx context.Context) Check {
	return probe(ctx, c.Name, func(ctx context.Context) (string, error) {
		if err := c.DB.GetDB().PingContext(ctx); err != nil {
			return fmt.Sprintf("Database connection failed: %v", err), err
		}
		return "Database connection successful", nil
	})
}

// RedisChecker pings the response cache.
type RedisChecker struct {
	Client *redis.Client
	Name   string
}

func (c *RedisChecker) Check(ctx context.Context) Check {
	return probe(ctx, c.Name, func(ctx context.Context) (string, error) {
		if err := c.Client.Ping(ctx).Err(); err != nil {
			return fmt.Sprintf("Redis connection failed: %v", err), err
		}
		return "Redis connection successful", nil
	})
}

// ScheduleAPIChecker reports whether schedule lookups can authenticate.
// It does not call the upstream API; credentials being configured is the
// signal, so health checks stay free.
type ScheduleAPIChecker struct {
	Session *schedule.Session
	Name    string
}

func (c *ScheduleAPIChecker) Check(ctx context.Context) Check {
	check := Check{Name: c.Name, Timestamp: time.Now()}
	if c.Session == nil || !c.Session.Authorized() {
		check.Status = StatusDown
		check.Message = "Schedule API credentials not configured"
		return check
	}
	check.Status = StatusUp
	check.Message = "Schedule API credentials configured"
	return check
}

// HealthChecker fans out to the registered checkers.
type HealthChecker struct {
	checkers  []Checker
	version   string
	startTime time.Time
}

func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{version: version, startTime: time.Now()}
}

func (h *HealthChecker) AddChecker(checker Checker) {
	h.checkers = append(h.checkers, checker)
}

func (h *HealthChecker) report(checks map[string]Check) HealthReport {
	status := StatusUp
	for _, check := range checks {
		if check.Status == StatusDown {
			status = StatusDown
		}
	}
	return HealthReport{
		Status:    status,
		Version:   h.version,
		Timestamp: time.Now(),
		Checks:    checks,
		Uptime:    time.Since(h.startTime),
	}
}

// CheckHealth runs every registered checker.
func (h *HealthChecker) CheckHealth(ctx context.Context) HealthReport {
	checks := make(map[string]Check)
	for _, checker := range h.checkers {
		check := checker.Check(ctx)
		checks[check.Name] = check
	}
	return h.report(checks)
}

// CheckReadiness runs the data-store checkers only. Missing schedule
// credentials degrade lookups but the rest of the API still serves, so
// they do not gate readiness.
func (h *HealthChecker) CheckReadiness(ctx context.Context) HealthReport {
	checks := make(map[string]Check)
	for _, checker := range h.checkers {
		switch checker.(type) {
		case *PostgresChecker, *RedisChecker:
		default:
			continue
		}
		check := checker.Check(ctx)
		checks[check.Name] = check
	}
	return h.report(checks)
}

// CheckLiveness reports process health without touching dependencies.
func (h *HealthChecker) CheckLiveness(ctx context.Context) HealthReport {
	return h.report(map[string]Check{
		"application": {
			Name:      "application",
			Status:    StatusUp,
			Message:   "Application is running",
			Timestamp: time.Now(),
		},
	})
}

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"tank-battle/internal/event"
)

const instrumentationName = "tank-battle/internal/metrics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder turns gameplay events into OpenTelemetry counters. It also keeps
// plain totals for the run summary.
type Recorder struct {
	enemiesDestroyed metric.Int64Counter
	bulletsFired     metric.Int64Counter
	powerUpsTaken    metric.Int64Counter
	levelsCompleted  metric.Int64Counter
	gamesOver        metric.Int64Counter

	totals map[event.EventType]int64
}

// NewRecorder registers the counters on m, or on the global meter when m is
// nil. Without an installed provider the global meter is a no-op.
func NewRecorder(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = meter()
	}
	r := &Recorder{totals: make(map[event.EventType]int64)}

	var err error
	if r.enemiesDestroyed, err = m.Int64Counter("tankbattle.enemies.destroyed",
		metric.WithDescription("Enemy tanks destroyed")); err != nil {
		return nil, fmt.Errorf("creating enemies counter: %w", err)
	}
	if r.bulletsFired, err = m.Int64Counter("tankbattle.bullets.fired",
		metric.WithDescription("Bullets fired by any tank")); err != nil {
		return nil, fmt.Errorf("creating bullets counter: %w", err)
	}
	if r.powerUpsTaken, err = m.Int64Counter("tankbattle.powerups.collected",
		metric.WithDescription("Power-ups picked up by the player")); err != nil {
		return nil, fmt.Errorf("creating power-ups counter: %w", err)
	}
	if r.levelsCompleted, err = m.Int64Counter("tankbattle.levels.completed",
		metric.WithDescription("Levels cleared")); err != nil {
		return nil, fmt.Errorf("creating levels counter: %w", err)
	}
	if r.gamesOver, err = m.Int64Counter("tankbattle.games.over",
		metric.WithDescription("Runs ended, by reason")); err != nil {
		return nil, fmt.Errorf("creating games counter: %w", err)
	}
	return r, nil
}

// Attach subscribes the recorder to the events it counts.
func (r *Recorder) Attach(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.EnemyDestroyed, event.BulletFired, event.PowerUpCollected,
		event.LevelCompleted, event.GameOver,
	} {
		d.Subscribe(t, r)
	}
}

// OnEvent implements event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.EnemyDestroyed:
		var opts []metric.AddOption
		if d, ok := e.Data.(event.EnemyDestroyedData); ok {
			opts = append(opts, metric.WithAttributes(attribute.String("class", string(d.Class))))
		}
		r.enemiesDestroyed.Add(ctx, 1, opts...)
	case event.BulletFired:
		var opts []metric.AddOption
		if d, ok := e.Data.(event.BulletFiredData); ok {
			opts = append(opts, metric.WithAttributes(attribute.String("faction", d.Faction.String())))
		}
		r.bulletsFired.Add(ctx, 1, opts...)
	case event.PowerUpCollected:
		r.powerUpsTaken.Add(ctx, 1)
	case event.LevelCompleted:
		r.levelsCompleted.Add(ctx, 1)
	case event.GameOver:
		reason := "unknown"
		if d, ok := e.Data.(event.GameOverData); ok {
			reason = string(d.Reason)
		}
		r.gamesOver.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	default:
		return
	}
	r.totals[e.Type]++
}

// Total returns how many events of type t were counted.
func (r *Recorder) Total(t event.EventType) int64 {
	return r.totals[t]
}

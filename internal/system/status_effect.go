// internal/system/status_effect.go
package system

import "tank-battle/internal/entity"

// StatusEffectSystem normalises expired effect timestamps back to zero.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

func (s *StatusEffectSystem) Update(now int64) {
	for _, t := range s.ecs.Tanks {
		t.Effects.Expire(now)
	}
}

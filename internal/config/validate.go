package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEnemyType is returned when a wave references a type missing from the enemy table.
	ErrUnknownEnemyType = errors.New("unknown enemy type")
	// ErrInvalid marks any other out-of-range value.
	ErrInvalid = errors.New("invalid value")
)

// Validate checks the configuration for values the simulation cannot run with.
func (c DragonConfig) Validate() error {
	if c.Variant != VariantRich && c.Variant != VariantClassic {
		return fmt.Errorf("variant %q: %w", c.Variant, ErrInvalid)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive: %w", ErrInvalid)
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.max_health must be positive: %w", ErrInvalid)
	}
	if c.Projectile.Life <= 0 || c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile speed and life must be positive: %w", ErrInvalid)
	}
	if c.Spawn.ForwardMax < c.Spawn.ForwardMin {
		return fmt.Errorf("spawn.forward_max below forward_min: %w", ErrInvalid)
	}
	if c.Explosion.Decay <= 0 {
		return fmt.Errorf("explosion.decay must be positive: %w", ErrInvalid)
	}
	if len(c.Waves) == 0 {
		return fmt.Errorf("at least one wave is required: %w", ErrInvalid)
	}

	for name, e := range c.Enemies {
		switch {
		case e.HP <= 0:
			return fmt.Errorf("enemies.%s.hp must be positive: %w", name, ErrInvalid)
		case e.Speed <= 0:
			return fmt.Errorf("enemies.%s.speed must be positive: %w", name, ErrInvalid)
		case e.HitRadius <= 0:
			return fmt.Errorf("enemies.%s.hit_radius must be positive: %w", name, ErrInvalid)
		case e.CollisionRadius <= 0:
			return fmt.Errorf("enemies.%s.collision_radius must be positive: %w", name, ErrInvalid)
		}
	}

	for i, w := range c.Waves {
		if w.SpawnDelayMS <= 0 {
			return fmt.Errorf("waves[%d].spawn_delay_ms must be positive: %w", i, ErrInvalid)
		}
		for _, g := range w.Enemies {
			if _, ok := c.Enemies[g.Type]; !ok {
				return fmt.Errorf("waves[%d]: %q: %w", i, g.Type, ErrUnknownEnemyType)
			}
			if g.Count <= 0 {
				return fmt.Errorf("waves[%d].%s count must be positive: %w", i, g.Type, ErrInvalid)
			}
		}
	}
	return nil
}

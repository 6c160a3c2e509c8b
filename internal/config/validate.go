package config

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Last-Hope/internal/sim"
)

// Validate checks ranges and cross-field constraints. It reports every
// problem at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			bad("%s must be positive, got %v", name, v)
		}
	}
	ordered := func(lo, hi string, a, b float64) {
		if a > b {
			bad("%s (%v) must not exceed %s (%v)", lo, a, hi, b)
		}
	}
	unit := func(name string, v float64) {
		if v < 0 || v > 1 {
			bad("%s must be within [0, 1], got %v", name, v)
		}
	}

	h := c.Host
	positive("host.scale", h.Scale)
	unit("host.volume", h.Volume)

	t := c.Tuning
	positive("width", t.Width)
	positive("height", t.Height)
	positive("ref_fps", t.RefFPS)
	if t.Floor <= t.PlayerRadius*2 || t.Floor > t.Height {
		bad("floor must be inside the arena and leave room for the player, got %v", t.Floor)
	}
	if t.PlayerRadius*2 >= t.Width {
		bad("player_radius %v does not fit in width %v", t.PlayerRadius, t.Width)
	}
	if t.MaxEnemies < 0 {
		bad("max_enemies must not be negative, got %d", t.MaxEnemies)
	}

	positive("player_radius", t.PlayerRadius)
	positive("player_speed", t.PlayerSpeed)
	positive("player_max_health", t.PlayerMaxHealth)
	positive("fire_delay", t.FireDelay)
	if t.PlayerDamage <= 0 {
		bad("player_damage must be positive, got %d", t.PlayerDamage)
	}
	switch t.FireGate {
	case sim.FireGateAmmo:
		if t.PlayerAmmo <= 0 {
			bad("player_ammo must be positive with the ammo gate, got %d", t.PlayerAmmo)
		}
		positive("reload_time", t.ReloadTime)
	case sim.FireGateHeat:
		positive("shot_heat", t.ShotHeat)
	default:
		bad("fire_gate %d is not ammo or heat", int(t.FireGate))
	}

	positive("heat_cap", t.HeatCap)
	if t.OverheatThreshold > t.HeatCap || t.DashHeatLimit > t.HeatCap {
		bad("overheat_threshold and dash_heat_limit must not exceed heat_cap %v", t.HeatCap)
	}
	positive("shot_speed", t.ShotSpeed)
	positive("shot_life", t.ShotLife)

	unit("enemy_top_edge_chance", t.EnemyTopEdgeChance)
	ordered("enemy_speed_min", "enemy_speed_max", t.EnemySpeedMin, t.EnemySpeedMax)
	ordered("enemy_size_min", "enemy_size_max", float64(t.EnemySizeMin), float64(t.EnemySizeMax))
	if t.EnemyBaseHP <= 0 {
		bad("enemy_base_hp must be positive, got %d", t.EnemyBaseHP)
	}
	positive("spawn_interval_min", t.SpawnIntervalMin)
	if t.WaveScoreStep <= 0 {
		bad("wave_score_step must be positive, got %d", t.WaveScoreStep)
	}

	unit("coin_restitution", t.CoinRestitution)
	unit("coin_friction", t.CoinFriction)
	unit("coin_double_chance", t.CoinDoubleChance)
	positive("coin_radius", t.CoinRadius)
	if t.CoinDropMin < 0 {
		bad("coin_drop_min must not be negative, got %d", t.CoinDropMin)
	}
	ordered("coin_drop_min", "coin_drop_max", float64(t.CoinDropMin), float64(t.CoinDropMax))
	ordered("coin_launch_y_min", "coin_launch_y_max", t.CoinLaunchYMin, t.CoinLaunchYMax)

	if t.ShopDelayMin < 0 {
		bad("shop_delay_min must not be negative, got %v", t.ShopDelayMin)
	}
	ordered("shop_delay_min", "shop_delay_max", t.ShopDelayMin, t.ShopDelayMax)
	if t.ShopOfferSize <= 0 {
		bad("shop_offer_size must be positive, got %d", t.ShopOfferSize)
	}
	// Number keys 1..9 cover the cards plus the close option.
	if t.ShopOfferSize > 8 {
		bad("shop_offer_size %d leaves no key for the close option", t.ShopOfferSize)
	}
	if len(t.Catalog) == 0 {
		bad("catalog is empty")
	}
	for i, card := range t.Catalog {
		if card.Name == "" {
			bad("catalog[%d]: missing name", i)
		}
		if card.Cost < 0 {
			bad("catalog[%d] %s: negative cost %d", i, card.Name, card.Cost)
		}
		if !card.Effect.Known() {
			bad("catalog[%d] %s: unknown effect %q", i, card.Name, card.Effect)
		}
	}

	return errors.Join(errs...)
}

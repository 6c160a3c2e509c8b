package sim

import "fmt"

// FireGate selects which resource limits the trigger.
type FireGate int

const (
	FireGateAmmo FireGate = iota // magazine + reload; overheat only slows movement
	FireGateHeat                 // unlimited ammo; shots add heat and a full meter blocks fire
)

// ParseFireGate maps "ammo" or "heat" to a FireGate.
func ParseFireGate(s string) (FireGate, error) {
	switch s {
	case "ammo", "":
		return FireGateAmmo, nil
	case "heat":
		return FireGateHeat, nil
	}
	return FireGateAmmo, fmt.Errorf("unknown fire gate %q", s)
}

// UnmarshalText lets profile files spell the gate by name.
func (f *FireGate) UnmarshalText(b []byte) error {
	g, err := ParseFireGate(string(b))
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (f FireGate) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f FireGate) String() string {
	switch f {
	case FireGateAmmo:
		return "ammo"
	case FireGateHeat:
		return "heat"
	default:
		return "unknown"
	}
}

// UpgradeEffect tags what a shop card does when bought.
type UpgradeEffect string

const (
	UpgradeHeatSink  UpgradeEffect = "heatSink"
	UpgradeDamage    UpgradeEffect = "damage"
	UpgradeHeal      UpgradeEffect = "heal"
	UpgradeMaxHealth UpgradeEffect = "maxHealth"
	UpgradeSpeed     UpgradeEffect = "speed"
	UpgradeFireRate  UpgradeEffect = "fireRate"
	UpgradeCoinBonus UpgradeEffect = "coinBonus"
)

// Known reports whether the simulation knows how to apply e.
func (e UpgradeEffect) Known() bool {
	switch e {
	case UpgradeHeatSink, UpgradeDamage, UpgradeHeal, UpgradeMaxHealth,
		UpgradeSpeed, UpgradeFireRate, UpgradeCoinBonus:
		return true
	}
	return false
}

// ShopCard is one catalog entry.
type ShopCard struct {
	Name   string        `yaml:"name"`
	Desc   string        `yaml:"desc"`
	Cost   int           `yaml:"cost"`
	Effect UpgradeEffect `yaml:"effect"`
}

// Tuning holds every constant the simulation reads. A Session copies it at
// construction and never writes to it, so two sessions with different tuning
// can run side by side.
type Tuning struct {
	// Arena. Floor is the lowest y the player (and resting coins) may reach.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Floor  float64 `yaml:"floor"`
	// RefFPS is the frame rate the per-frame constants were tuned at.
	RefFPS     float64 `yaml:"ref_fps"`
	MaxEnemies int     `yaml:"max_enemies"`

	// Player.
	PlayerRadius    float64  `yaml:"player_radius"`
	PlayerSpeed     float64  `yaml:"player_speed"`
	PlayerMaxHealth float64  `yaml:"player_max_health"`
	PlayerAmmo      int      `yaml:"player_ammo"`
	PlayerDamage    int      `yaml:"player_damage"`
	CoolRate        float64  `yaml:"cool_rate"`
	FireDelay       float64  `yaml:"fire_delay"`
	FireGate        FireGate `yaml:"fire_gate"`

	// Heat, sprint and dash.
	HeatCap           float64 `yaml:"heat_cap"`
	HeatSprintRate    float64 `yaml:"heat_sprint_rate"`   // heat/s while sprinting
	OverheatThreshold float64 `yaml:"overheat_threshold"` // strictly above ⇒ slowed
	OverheatSpeedMul  float64 `yaml:"overheat_speed_mul"`
	SprintSpeedMul    float64 `yaml:"sprint_speed_mul"`
	DashSpeedMul      float64 `yaml:"dash_speed_mul"`
	DashDuration      float64 `yaml:"dash_duration"`
	DashHeatCost      float64 `yaml:"dash_heat_cost"`
	DashHeatLimit     float64 `yaml:"dash_heat_limit"` // dash refused above this
	ReloadTime        float64 `yaml:"reload_time"`
	ShotHeat          float64 `yaml:"shot_heat"` // heat per shot; heat gate only

	// Shots.
	ShotSpeed          float64 `yaml:"shot_speed"`
	ShotHeatSpeedBonus float64 `yaml:"shot_heat_speed_bonus"` // × heat, while moving
	ShotLife           float64 `yaml:"shot_life"`
	ShotRadius         float64 `yaml:"shot_radius"`
	ShotBoundsPad      float64 `yaml:"shot_bounds_pad"`
	ShootAnimTime      float64 `yaml:"shoot_anim_time"`

	// Enemies.
	EnemySpawnPad      float64 `yaml:"enemy_spawn_pad"`
	EnemyTopEdgeChance float64 `yaml:"enemy_top_edge_chance"`
	EnemySpeedMin      float64 `yaml:"enemy_speed_min"`
	EnemySpeedMax      float64 `yaml:"enemy_speed_max"`
	EnemySpeedPerWave  float64 `yaml:"enemy_speed_per_wave"`
	EnemyBaseHP        int     `yaml:"enemy_base_hp"`
	EnemyHPWaveDivisor int     `yaml:"enemy_hp_wave_divisor"`
	EnemySizeMin       int     `yaml:"enemy_size_min"`
	EnemySizeMax       int     `yaml:"enemy_size_max"`
	EnemyMoodRate      float64 `yaml:"enemy_mood_rate"`
	ContactDPS         float64 `yaml:"contact_dps"`
	ContactHeatPerSec  float64 `yaml:"contact_heat_per_sec"`

	// Scoring and waves.
	HitScore             int     `yaml:"hit_score"`
	KillScore            int     `yaml:"kill_score"`
	WaveScoreStep        int     `yaml:"wave_score_step"`
	WaveHeal             float64 `yaml:"wave_heal"`
	InitialSpawnDelay    float64 `yaml:"initial_spawn_delay"`
	SpawnIntervalBase    float64 `yaml:"spawn_interval_base"`
	SpawnIntervalPerWave float64 `yaml:"spawn_interval_per_wave"`
	SpawnIntervalMin     float64 `yaml:"spawn_interval_min"`

	// Coins.
	CoinGravity      float64 `yaml:"coin_gravity"`
	CoinRestitution  float64 `yaml:"coin_restitution"`
	CoinFriction     float64 `yaml:"coin_friction"`
	CoinRestSpeed    float64 `yaml:"coin_rest_speed"`
	CoinRadius       float64 `yaml:"coin_radius"`
	CoinDropMin      int     `yaml:"coin_drop_min"`
	CoinDropMax      int     `yaml:"coin_drop_max"`
	CoinLaunchX      float64 `yaml:"coin_launch_x"`     // vx ∈ U[-x, x]
	CoinLaunchYMin   float64 `yaml:"coin_launch_y_min"` // vy ∈ U[min, max], negative is up
	CoinLaunchYMax   float64 `yaml:"coin_launch_y_max"`
	CoinDoubleChance float64 `yaml:"coin_double_chance"`

	// Shop.
	ShopFirstDelay float64    `yaml:"shop_first_delay"`
	ShopDelayMin   float64    `yaml:"shop_delay_min"`
	ShopDelayMax   float64    `yaml:"shop_delay_max"`
	ShopOfferSize  int        `yaml:"shop_offer_size"`
	ShopDeniedNote float64    `yaml:"shop_denied_note"`
	ShopBoughtNote float64    `yaml:"shop_bought_note"`
	Catalog        []ShopCard `yaml:"catalog"`
}

// DefaultCatalog is the shop's stock list.
func DefaultCatalog() []ShopCard {
	return []ShopCard{
		{Name: "heat sink", Desc: "vents faster cool down", Cost: 6, Effect: UpgradeHeatSink},
		{Name: "side hustle", Desc: "+1 shot damage", Cost: 8, Effect: UpgradeDamage},
		{Name: "restock", Desc: "+35 hp instantly", Cost: 5, Effect: UpgradeHeal},
		{Name: "armor plating", Desc: "+15 max hp (and heal)", Cost: 7, Effect: UpgradeMaxHealth},
		{Name: "espresso skates", Desc: "+45 move speed", Cost: 6, Effect: UpgradeSpeed},
		{Name: "trigger tweak", Desc: "faster fire rate", Cost: 7, Effect: UpgradeFireRate},
		{Name: "coin printer", Desc: "coins drop x2 value", Cost: 10, Effect: UpgradeCoinBonus},
	}
}

// DefaultTuning returns the classic ammo-gated profile.
func DefaultTuning() Tuning {
	return Tuning{
		Width:      1100,
		Height:     720,
		Floor:      600,
		RefFPS:     60,
		MaxEnemies: 50,

		PlayerRadius:    48,
		PlayerSpeed:     360,
		PlayerMaxHealth: 130,
		PlayerAmmo:      10,
		PlayerDamage:    1,
		CoolRate:        0.8,
		FireDelay:       0.18,
		FireGate:        FireGateAmmo,

		HeatCap:           3.0,
		HeatSprintRate:    2.0,
		OverheatThreshold: 2.5,
		OverheatSpeedMul:  0.6,
		SprintSpeedMul:    1.5,
		DashSpeedMul:      1.65,
		DashDuration:      0.3,
		DashHeatCost:      0.5,
		DashHeatLimit:     2.7,
		ReloadTime:        1.5,
		ShotHeat:          0,

		ShotSpeed:          650,
		ShotHeatSpeedBonus: 30,
		ShotLife:           1.3,
		ShotRadius:         6,
		ShotBoundsPad:      60,
		ShootAnimTime:      0.18,

		EnemySpawnPad:      80,
		EnemyTopEdgeChance: 0.25,
		EnemySpeedMin:      100,
		EnemySpeedMax:      190,
		EnemySpeedPerWave:  7,
		EnemyBaseHP:        2,
		EnemyHPWaveDivisor: 3,
		EnemySizeMin:       18,
		EnemySizeMax:       32,
		EnemyMoodRate:      3,
		ContactDPS:         35,
		ContactHeatPerSec:  0.1 * 60,

		HitScore:             6,
		KillScore:            30,
		WaveScoreStep:        220,
		WaveHeal:             20,
		InitialSpawnDelay:    0.5,
		SpawnIntervalBase:    1.4,
		SpawnIntervalPerWave: 0.08,
		SpawnIntervalMin:     0.45,

		CoinGravity:      250,
		CoinRestitution:  0.25,
		CoinFriction:     0.75,
		CoinRestSpeed:    5,
		CoinRadius:       10,
		CoinDropMin:      1,
		CoinDropMax:      3,
		CoinLaunchX:      120,
		CoinLaunchYMin:   -260,
		CoinLaunchYMax:   -120,
		CoinDoubleChance: 1.0 / 3.0,

		ShopFirstDelay: 20,
		ShopDelayMin:   18,
		ShopDelayMax:   28,
		ShopOfferSize:  5,
		ShopDeniedNote: 1.6,
		ShopBoughtNote: 2.5,
		Catalog:        DefaultCatalog(),
	}
}

// OverheatTuning is the heat-gated alternate: no magazine, every shot adds
// heat, and a full meter blocks the trigger instead of slowing the player.
func OverheatTuning() Tuning {
	t := DefaultTuning()
	t.FireGate = FireGateHeat
	t.ShotHeat = 0.12
	t.OverheatThreshold = t.HeatCap
	return t
}

// SpawnInterval is the delay between spawns at the given wave.
func (t *Tuning) SpawnInterval(wave int) float64 {
	return max(t.SpawnIntervalMin, t.SpawnIntervalBase-float64(wave)*t.SpawnIntervalPerWave)
}

// WaveHP is the hit points of an enemy spawned at the given wave.
func (t *Tuning) WaveHP(wave int) int {
	if t.EnemyHPWaveDivisor <= 0 {
		return t.EnemyBaseHP
	}
	return t.EnemyBaseHP + wave/t.EnemyHPWaveDivisor
}

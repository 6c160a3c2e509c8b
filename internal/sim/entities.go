package sim

// Player is the one character the host controls.
type Player struct {
	Pos       Vec2
	Facing    int // +1 right, -1 left
	Radius    float64
	Speed     float64
	MaxHealth float64
	Health    float64

	Cool    float64 // seconds until the trigger is free
	Heat    float64 // 0..HeatCap
	Dash    float64 // seconds of dash left
	Ammo    int
	MaxAmmo int

	Reloading bool
	Reload    float64 // seconds of reload left

	Damage    int
	CoolRate  float64 // heat shed per second when not sprinting
	FireDelay float64

	// Presentation flags the animation layer reads.
	Moving     bool
	ShootTimer float64
	Dead       bool
}

// Enemy walks straight at the player until shot down.
type Enemy struct {
	Pos   Vec2
	Speed float64
	HP    int
	Size  float64 // collision radius
	Mood  float64 // visual intensity only
}

// Shot is a player projectile.
type Shot struct {
	Pos    Vec2
	Vel    Vec2
	Life   float64
	Damage int
	Radius float64
}

// Coin is dropped by dead enemies and bounces along the floor until collected.
type Coin struct {
	Pos    Vec2
	Vel    Vec2
	Value  int
	Radius float64
}

func newPlayer(t *Tuning) Player {
	ammo := t.PlayerAmmo
	if t.FireGate == FireGateHeat {
		ammo = 0
	}
	return Player{
		Pos:       Vec2{X: t.Width / 2, Y: t.Height / 2},
		Facing:    1,
		Radius:    t.PlayerRadius,
		Speed:     t.PlayerSpeed,
		MaxHealth: t.PlayerMaxHealth,
		Health:    t.PlayerMaxHealth,
		Ammo:      ammo,
		MaxAmmo:   ammo,
		Damage:    t.PlayerDamage,
		CoolRate:  t.CoolRate,
		FireDelay: t.FireDelay,
	}
}

// newEnemy rolls an enemy just outside one arena edge. The top edge gets
// EnemyTopEdgeChance; the other three share the rest evenly.
func newEnemy(t *Tuning, r Rand, wave int) Enemy {
	pad := t.EnemySpawnPad
	var pos Vec2
	edge := 0 // top
	if r.Float64() >= t.EnemyTopEdgeChance {
		edge = 1 + r.Intn(3)
	}
	switch edge {
	case 0:
		pos = Vec2{X: float64(intBetween(r, 0, int(t.Width))), Y: -pad}
	case 1:
		pos = Vec2{X: float64(intBetween(r, 0, int(t.Width))), Y: t.Height + pad}
	case 2:
		pos = Vec2{X: -pad, Y: float64(intBetween(r, 0, int(t.Height)))}
	default:
		pos = Vec2{X: t.Width + pad, Y: float64(intBetween(r, 0, int(t.Height)))}
	}
	return Enemy{
		Pos:   pos,
		Speed: uniform(r, t.EnemySpeedMin, t.EnemySpeedMax) + float64(wave)*t.EnemySpeedPerWave,
		HP:    t.WaveHP(wave),
		Size:  float64(intBetween(r, t.EnemySizeMin, t.EnemySizeMax)),
	}
}

func newCoin(t *Tuning, r Rand, at Vec2) Coin {
	value := 1
	if r.Float64() < t.CoinDoubleChance {
		value = 2
	}
	return Coin{
		Pos:    at,
		Vel:    Vec2{X: uniform(r, -t.CoinLaunchX, t.CoinLaunchX), Y: uniform(r, t.CoinLaunchYMin, t.CoinLaunchYMax)},
		Value:  value,
		Radius: t.CoinRadius,
	}
}

// newShot aims a projectile from p toward target. Moving while hot makes
// shots travel faster.
func newShot(t *Tuning, p *Player, target Vec2) Shot {
	speed := t.ShotSpeed
	if p.Moving {
		speed += p.Heat * t.ShotHeatSpeedBonus
	}
	return Shot{
		Pos:    p.Pos,
		Vel:    p.Pos.DirTo(target).Scale(speed),
		Life:   t.ShotLife,
		Damage: p.Damage,
		Radius: t.ShotRadius,
	}
}

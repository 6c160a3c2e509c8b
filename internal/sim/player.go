package sim

import "math"

// updatePlayer runs the controller for one frame: dash, movement and heat,
// timers, then trigger and manual reload.
func (s *Session) updatePlayer(dt float64, in Input) {
	if in.Dash {
		s.tryDash()
	}
	s.movePlayer(dt, in)
	s.tickPlayerTimers(dt)
	if in.Fire {
		if shot, ok := s.tryFire(in.Aim); ok {
			s.Shots = append(s.Shots, shot)
		}
	}
	if in.Reload {
		s.startReload()
	}
}

// moveDirection folds the four held directions into a unit vector.
// Opposing keys cancel; no keys gives the zero vector.
func moveDirection(in Input) Vec2 {
	var d Vec2
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d.NormOr(Vec2{})
}

func (s *Session) movePlayer(dt float64, in Input) {
	t := &s.tuning
	p := &s.Player

	dir := moveDirection(in)
	moving := !dir.IsZero()
	sprinting := moving && in.Sprint
	p.Moving = moving
	if moving && math.Abs(dir.X) > 0.05 {
		if dir.X > 0 {
			p.Facing = 1
		} else {
			p.Facing = -1
		}
	}

	if sprinting {
		p.Heat = math.Min(t.HeatCap, p.Heat+dt*t.HeatSprintRate)
	} else {
		p.Heat = math.Max(0, p.Heat-dt*p.CoolRate)
	}

	mul := 1.0
	if p.Heat > t.OverheatThreshold {
		mul = t.OverheatSpeedMul
	} else if sprinting {
		mul = t.SprintSpeedMul
	}
	if p.Dash > 0 {
		mul *= t.DashSpeedMul
	}

	if moving {
		p.Pos = p.Pos.Add(dir.Scale(p.Speed * mul * dt))
	}
	p.Pos.X = clamp(p.Pos.X, p.Radius, t.Width-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y, p.Radius, t.Floor-p.Radius)
}

func (s *Session) tickPlayerTimers(dt float64) {
	p := &s.Player
	p.Cool = math.Max(0, p.Cool-dt)
	p.Dash = math.Max(0, p.Dash-dt)
	p.ShootTimer = math.Max(0, p.ShootTimer-dt)
	if p.Reloading {
		p.Reload -= dt
		if p.Reload <= 0 {
			p.Reload = 0
			p.Reloading = false
			p.Ammo = p.MaxAmmo
			s.emit(Event{Kind: EventReloadDone, Pos: p.Pos, Value: float64(p.Ammo)})
		}
	}
}

// canFire reports whether the trigger would accept a shot right now.
func (s *Session) canFire() bool {
	p := &s.Player
	if p.Cool > 0 {
		return false
	}
	if s.tuning.FireGate == FireGateHeat {
		return p.Heat < s.tuning.HeatCap
	}
	return !p.Reloading && p.Ammo > 0
}

// tryFire emits one shot toward target if the trigger is free. A refused
// trigger leaves the player untouched.
func (s *Session) tryFire(target Vec2) (Shot, bool) {
	if !s.canFire() {
		s.emit(Event{Kind: EventShotRejected, Pos: s.Player.Pos})
		return Shot{}, false
	}
	t := &s.tuning
	p := &s.Player

	shot := newShot(t, p, target)
	p.Cool = p.FireDelay
	p.ShootTimer = t.ShootAnimTime
	s.Stats.ShotsFired++
	s.emit(Event{Kind: EventShot, Pos: p.Pos, Value: shot.Vel.Len()})

	if t.FireGate == FireGateHeat {
		p.Heat = math.Min(t.HeatCap, p.Heat+t.ShotHeat)
		return shot, true
	}
	p.Ammo--
	if p.Ammo <= 0 {
		p.Ammo = 0
		s.beginReload()
	}
	return shot, true
}

// startReload handles the manual reload intent.
func (s *Session) startReload() {
	p := &s.Player
	if s.tuning.FireGate != FireGateAmmo || p.Reloading || p.Ammo >= p.MaxAmmo {
		return
	}
	s.beginReload()
}

func (s *Session) beginReload() {
	p := &s.Player
	p.Reloading = true
	p.Reload = s.tuning.ReloadTime
	s.emit(Event{Kind: EventReloadStart, Pos: p.Pos, Value: float64(p.Ammo)})
}

// tryDash opens a short burst window when the player is cool enough.
func (s *Session) tryDash() bool {
	t := &s.tuning
	p := &s.Player
	if p.Heat > t.DashHeatLimit || p.Dash > 0 {
		return false
	}
	p.Dash = t.DashDuration
	p.Heat = math.Min(t.HeatCap, p.Heat+t.DashHeatCost)
	s.emit(Event{Kind: EventDash, Pos: p.Pos})
	return true
}

package sim

// checkHazards starts the fall sequence when the grounded player's center
// enters a gap. The sequence starts at most once per run.
func (s *Simulation) checkHazards() {
	p := &s.world.Player
	if p.IsFallingIntoHole {
		return
	}
	groundLine := s.cfg.World.GroundHeight - s.cfg.Hazard.GroundTolerance
	for _, h := range s.world.Hazards {
		if !h.Contains(p.CenterX()) || p.Bottom() < groundLine {
			continue
		}
		s.detachRider()
		p.enterFall(h, s.cfg.Hazard.EntryVelocity)
		s.timers.After(s.clockMs+s.cfg.Hazard.DeathDelayMs, s.epoch, s.fallDeath)
		return
	}
}

// fallDeath ends the run by falling. Safe to call more than once.
func (s *Simulation) fallDeath() {
	if s.gameOver {
		return
	}
	s.deathByFall = true
	s.endRun(false)
}

func (s *Simulation) detachRider() {
	for i := range s.world.Platforms {
		if s.world.Platforms[i].Rider == PlayerHandle {
			s.world.Platforms[i].Rider = NoHandle
		}
	}
}

package sim

import "math"

const (
	shopOpenMessage   = "shop paused reality"
	shopDeniedMessage = "not enough coin juice"
)

// Upgrade amounts. Each purchase stacks; only heal, max health and fire
// rate are bounded.
const (
	heatSinkStep   = 0.25
	damageStep     = 1
	healAmount     = 35.0
	maxHealthStep  = 15.0
	speedStep      = 45.0
	fireDelayStep  = 0.02
	fireDelayFloor = 0.08
	coinBonusStep  = 1
)

func (s *Session) updateShopTimer(dt float64) {
	s.Shop.Timer -= dt
	if s.Shop.Timer <= 0 && !s.Shop.Active {
		s.OpenShop()
	}
}

// updateShopNote fades the shop banner. A zero timer means the message
// stays until something replaces it.
func (s *Session) updateShopNote(dt float64) {
	sh := &s.Shop
	if sh.NoteTimer <= 0 {
		return
	}
	sh.NoteTimer = math.Max(0, sh.NoteTimer-dt)
	if sh.NoteTimer == 0 {
		sh.Message = ""
	}
}

// OpenShop pauses play and deals a fresh hand of distinct cards.
func (s *Session) OpenShop() {
	t := &s.tuning
	sh := &s.Shop
	sh.Active = true
	sh.Message = shopOpenMessage
	sh.NoteTimer = 0
	idx := sampleIndices(s.rng, len(t.Catalog), t.ShopOfferSize)
	sh.Cards = make([]ShopCard, len(idx))
	for i, j := range idx {
		sh.Cards[i] = t.Catalog[j]
	}
	s.emit(Event{Kind: EventShopOpened, Pos: s.Player.Pos, Value: float64(len(sh.Cards))})
}

// CloseShop resumes play and schedules the next opening.
func (s *Session) CloseShop() {
	t := &s.tuning
	sh := &s.Shop
	sh.Active = false
	sh.Message = ""
	sh.NoteTimer = 0
	sh.Timer = uniform(s.rng, t.ShopDelayMin, t.ShopDelayMax)
	s.emit(Event{Kind: EventShopClosed, Pos: s.Player.Pos, Value: sh.Timer})
}

// BuyOption tries to buy the card at index. An index past the hand closes
// the shop; a card the bank cannot cover leaves everything as it was apart
// from a short message.
func (s *Session) BuyOption(index int) bool {
	t := &s.tuning
	sh := &s.Shop
	if !sh.Active {
		return false
	}
	if index < 0 || index >= len(sh.Cards) {
		s.CloseShop()
		return false
	}
	card := sh.Cards[index]
	if s.Bank < card.Cost {
		sh.Message = shopDeniedMessage
		sh.NoteTimer = t.ShopDeniedNote
		s.emit(Event{Kind: EventPurchaseDenied, Pos: s.Player.Pos, Value: float64(card.Cost), Label: card.Name})
		return false
	}
	s.Bank -= card.Cost
	s.Stats.CoinsSpent += card.Cost
	s.Stats.Purchases++
	s.applyUpgrade(card.Effect)
	s.CloseShop()
	sh.Message = "bought " + card.Name
	sh.NoteTimer = t.ShopBoughtNote
	s.emit(Event{Kind: EventPurchase, Pos: s.Player.Pos, Value: float64(card.Cost), Label: card.Name})
	return true
}

// handleShopInput maps the numbered choice (1..n buys, n+1 closes) and the
// cancel intent onto shop actions.
func (s *Session) handleShopInput(in Input) {
	n := len(s.Shop.Cards)
	switch {
	case in.ShopChoice >= 1 && in.ShopChoice <= n:
		s.BuyOption(in.ShopChoice - 1)
	case in.ShopChoice == n+1:
		s.CloseShop()
	case in.ShopCancel:
		s.CloseShop()
	}
}

func (s *Session) applyUpgrade(effect UpgradeEffect) {
	p := &s.Player
	switch effect {
	case UpgradeHeatSink:
		p.CoolRate += heatSinkStep
	case UpgradeDamage:
		p.Damage += damageStep
	case UpgradeHeal:
		p.Health = math.Min(p.MaxHealth, p.Health+healAmount)
	case UpgradeMaxHealth:
		p.MaxHealth += maxHealthStep
		p.Health = math.Min(p.MaxHealth, p.Health+maxHealthStep)
	case UpgradeSpeed:
		p.Speed += speedStep
	case UpgradeFireRate:
		p.FireDelay = math.Max(fireDelayFloor, p.FireDelay-fireDelayStep)
	case UpgradeCoinBonus:
		s.CoinBonus += coinBonusStep
	}
}

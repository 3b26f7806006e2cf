// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// Clamp on the real-time delta fed into the simulation so a stalled
	// frame cannot teleport balloons across segments.
	MaxDeltaTime = 0.06

	StartingMoney = 200
	StartingLives = 100

	// Bonus money for clearing round n is RoundBonusPerRound * n.
	RoundBonusPerRound = 20

	// Fraction of the cumulative spend (placement + upgrades) refunded
	// when a tower is sold.
	SellRefundFactor = 0.7

	// Towers may not stand closer than this to the track centerline.
	PathClearance = 15.0
	// Minimum distance between two towers.
	TowerSpacing = 30.0
	// Margin from the screen edge inside which towers may be placed.
	PlacementMargin = 20.0

	// A projectile within this distance of its target registers a hit.
	HitRadius = 8.0
	// After a pierce hit the projectile seeks the closest live balloon
	// within this radius of the impact point.
	PierceSeekRadius = 120.0
	// Projectiles that drift this far outside the screen are discarded.
	ProjectileBounds = 50.0

	SpeedNormal = 1
	SpeedFast   = 2

	// HUD lives counter flashes red for this long after a leak.
	LivesFlashDuration = 0.5
)

var (
	BackgroundColor = color.RGBA{34, 120, 62, 255}
	TrackColor      = color.RGBA{158, 134, 100, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	MoneyColor      = color.RGBA{255, 215, 0, 255}
	LivesColor      = color.RGBA{220, 60, 60, 255}
	ButtonColor     = color.RGBA{100, 100, 100, 255}
	ButtonOKColor   = color.RGBA{150, 255, 150, 255}
	ButtonBadColor  = color.RGBA{255, 150, 150, 255}
	RangeColor      = color.RGBA{255, 255, 255, 60}
	ProjectileColor = color.RGBA{30, 30, 30, 255}
)

package game

// Ship tuning
const (
	PlayerLives          = 3
	MaxLives             = 5
	InvincibleTime       = 2.0 // seconds after a hit
	MaxShieldTime        = 5.0 // seconds of shield energy
	MaxSlowTime          = 3.0 // seconds of slow-time energy
	RapidFireTime        = 7.0
	ReverseBoostTime     = 0.5
	ShieldDrainRate      = 1.5
	ShieldRechargeRate   = 0.6
	SlowDrainRate        = 2.5
	SlowRechargeRate     = 0.4
	SlowAvailableRatio   = 0.9 // slow-time re-arms once energy reaches this share of max
	AbilityEpsilon       = 0.1 // minimum energy to activate shield or slow-time
	SlowTimeFactor       = 0.3
	TurnRate             = 2.0   // radians per second
	ForwardThrust        = 500.0 // pixels per second^2
	BackwardThrust       = -300.0
	ReverseBoostFactor   = 2.5
	ShipDrag             = 0.97 // multiplicative, per tick
	TrailLife            = 0.5
	MaxTrailPoints       = 64
	ShipCollisionRadius  = 15.0
	ShipBulletHitRadius  = 12.0
	ShipAsteroidPadding  = 8.0
	ShipDroneHitRadius   = 20.0
	PowerUpPickupRadius  = 20.0
	ShieldAsteroidBounce = 400.0
	ShieldDroneBounce    = 300.0
)

// Weapon tuning
const (
	BulletSpeed         = 600.0
	BulletLife          = 2.0
	BulletMuzzleOffset  = 15.0
	BulletSize          = 3.0
	RapidBulletSize     = 2.0
	FireRate            = 0.2
	RapidFireRate       = 0.1
	GunRecoil           = 30.0
	MissileAmmoMax      = 5
	MissileCooldown     = 0.5
	MissileLife         = 3.0
	MissileSpeed        = 400.0
	MissileTurnSpeed    = 3.0
	MissileMuzzleOffset = 20.0
	MissileRecoil       = 50.0
	MissileDroneDamage  = 2
	MissileRockDamage   = 15.0
	MissileRockPadding  = 10.0
	MissileAmmoRegen    = 1.0 // seconds per unit
	LaserDuration       = 1.5
	LaserCooldown       = 2.0
	LaserDamage         = 2
	LaserMaxPenetration = 5
	LaserRange          = 800.0
	LaserRecoil         = 80.0
	LaserDroneWidth     = 15.0
	LaserRockPadding    = 10.0
	LaserRockDamage     = 10.0
)

// Enemy and scoring tuning
const (
	AsteroidMinRadius     = 10.0 // at or below this an asteroid is destroyed
	AsteroidBulletDamage  = 10.0
	AsteroidCrushDamage   = 15.0
	DroneHitRadius        = 15.0
	DroneCollateralRadius = 20.0
	PowerUpChance         = 0.3
	PowerUpLifetime       = 10.0
	PowerUpGravity        = 50.0
	ComboWindow           = 2.0

	ScoreAsteroidHit    = 10
	ScoreDroneHit       = 50
	ScoreDroneKill      = 50
	ScoreMissileDrone   = 20
	ScoreMissileRock    = 15
	ScoreShieldBounce   = 5
	ScoreCollateralKill = 50
	ScoreWaveMultiplier = 100
)

// Off-screen margins beyond which entities despawn. Kept per entity type.
const (
	BulletMargin   = 50.0
	DroneMargin    = 50.0
	AsteroidMargin = 100.0
	MissileMargin  = 100.0
	PowerUpMargin  = 50.0
)

// Wave director tuning
const (
	StartingWave          = 1
	StartingEnemyQuota    = 5
	QuotaBase             = 5
	QuotaPerWave          = 3
	TimeDifficulty        = 1.5
	WaveDifficultyStep    = 0.5
	AsteroidSpawnDivisor  = 80.0
	DroneSpawnDivisor     = 200.0
	DroneCapBase          = 5
	AsteroidSpawnY        = -50.0
	DroneSpawnY           = -20.0
	WaveBurstParticles    = 50
	MaxDifficultyVelocity = 3.0
)

// Screen shake intensities
const (
	ShakeBulletHit   = 0.3
	ShakeShieldHit   = 0.3
	ShakeHeavyHit    = 0.5
	ShakeCollateral  = 0.2
	ShakePowerUp     = 0.2
	ShakeWaveCleared = 0.5
)

package sim

const (
	// Reverse thrust is weaker than forward thrust.
	ReverseThrustMultiplier = 0.7
	// Fraction of velocity kept after being pushed out of a collision body.
	CollisionRestitution = 0.2
	// Angular rates below this skip the incremental rotation, avoiding
	// quaternion drift from near-zero rotations.
	RotationEpsilon = 1e-4

	// A patrolling drone counts as arrived within this distance of its target.
	PatrolArriveDistance = 2.0
	// Random-area drones steer back toward the center beyond this fraction
	// of the area radius.
	AreaSteerFraction = 0.9
	// Below this speed a drone keeps its previous facing; the basis is
	// unstable near zero velocity.
	MinFacingSpeed = 0.01

	ExplosionTTL        = 1.2
	ExplosionGrowthRate = float32(2.0)
	SparkTTL            = 0.6
	SparkCount          = 12
	SparkSpread         = 6.0
	// Spark velocity decay is applied per tick, not per second. Frame-rate
	// dependent, kept as an accepted simplification.
	SparkVelocityDecay = 0.92
)

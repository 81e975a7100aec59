package storage

// Storage keys. Each key holds one JSON document.
const (
	KeyProfile           = "player_profile"
	KeyOperationProgress = "operation_progress"
	KeySessionHistory    = "session_history"
	KeyAchievements      = "achievements"
	KeyFactPerformance   = "fact_performance"
	KeySettings          = "settings"
	KeyEquippedShip      = "equipped_ship"
	KeyUnlockedShips     = "unlocked_ships"
)

// MaxSessionHistory bounds the session-history list; the oldest
// entries beyond it are evicted.
const MaxSessionHistory = 50

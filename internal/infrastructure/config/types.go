package config

// GameSettings is the root config for game.json
type GameSettings struct {
	Display    DisplayConfig    `json:"display"`
	Rules      RulesConfig      `json:"rules"`
	Projectile ProjectileConfig `json:"projectile"`
	Movement   MovementConfig   `json:"movement"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	SidebarWidth int `json:"sidebarWidth"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// RulesConfig holds economy and pacing rules
type RulesConfig struct {
	InitialHealth        int `json:"initialHealth"`
	InitialGold          int `json:"initialGold"`
	ScoreMultiplier      int `json:"scoreMultiplier"`      // score gained per point of reward
	WaveStartDelayMs     int `json:"waveStartDelayMs"`     // delay before a wave's first spawn
	SpawnCheckIntervalMs int `json:"spawnCheckIntervalMs"` // spawn queue polling cadence
	MaxFrameDeltaMs      int `json:"maxFrameDeltaMs"`      // frame delta clamp
	VictoryWave          int `json:"victoryWave"`          // 0 = endless, WON unreachable
}

type ProjectileConfig struct {
	Speed     float64 `json:"speed"`     // pixels per second
	HitRadius float64 `json:"hitRadius"` // pixels
}

type MovementConfig struct {
	SnapDistance float64 `json:"snapDistance"` // pixels
}

// MapConfig is the root config for map.json
type MapConfig struct {
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	CellSize      int             `json:"cellSize"`
	DedupeCorners bool            `json:"dedupeCorners"`
	Segments      []SegmentConfig `json:"segments"`
}

// SegmentConfig is one straight horizontal or vertical run of path cells
type SegmentConfig struct {
	From PointConfig `json:"from"`
	To   PointConfig `json:"to"`
}

type PointConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TowersConfig is the root config for towers.json
type TowersConfig struct {
	Order []string               `json:"order"`
	Types map[string]TowerConfig `json:"types"`
}

type TowerConfig struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        int     `json:"cost"`
	Damage      int     `json:"damage"`
	Range       float64 `json:"range"`      // cells
	FireRateMs  int     `json:"fireRateMs"` // minimum milliseconds between shots
	Color       string  `json:"color"`
}

// EnemiesConfig is the root config for enemies.json
type EnemiesConfig struct {
	Types map[string]EnemyConfig `json:"types"`
}

type EnemyConfig struct {
	Health int     `json:"health"`
	Speed  float64 `json:"speed"` // cells per second
	Reward int     `json:"reward"`
	Color  string  `json:"color"`
}

// WavesConfig is the root config for waves.json
type WavesConfig struct {
	Predefined []WaveConfig  `json:"predefined"`
	Endless    EndlessConfig `json:"endless"`
}

type WaveConfig struct {
	Groups []GroupConfig `json:"groups"`
}

type GroupConfig struct {
	Type            string `json:"type"`
	Count           int    `json:"count"`
	SpawnIntervalMs int    `json:"spawnIntervalMs"`
}

// EndlessConfig describes how waves past the predefined set are synthesized.
// Each level of difficulty adds CountPerLevel enemies to a group and shortens
// its interval by IntervalStepMs, never below MinIntervalMs.
type EndlessConfig struct {
	Groups         []EndlessGroupConfig `json:"groups"`
	BossType       string               `json:"bossType"`
	BossIntervalMs int                  `json:"bossIntervalMs"`
	LevelsPerBoss  int                  `json:"levelsPerBoss"`
}

type EndlessGroupConfig struct {
	Type           string `json:"type"`
	BaseCount      int    `json:"baseCount"`
	CountPerLevel  int    `json:"countPerLevel"`
	BaseIntervalMs int    `json:"baseIntervalMs"`
	IntervalStepMs int    `json:"intervalStepMs"`
	MinIntervalMs  int    `json:"minIntervalMs"`
}

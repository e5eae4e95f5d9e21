package config

// Default returns the built-in configuration. It matches the JSON files
// shipped in cmd/game/configs.
func Default() *GameConfig {
	return &GameConfig{
		Game: &GameSettings{
			Display: DisplayConfig{
				ScreenWidth:  640,
				ScreenHeight: 640,
				SidebarWidth: 220,
				Scale:        1,
				Framerate:    60,
			},
			Rules: RulesConfig{
				InitialHealth:        20,
				InitialGold:          200,
				ScoreMultiplier:      10,
				WaveStartDelayMs:     2000,
				SpawnCheckIntervalMs: 100,
				MaxFrameDeltaMs:      100,
				VictoryWave:          0,
			},
			Projectile: ProjectileConfig{
				Speed:     200,
				HitRadius: 10,
			},
			Movement: MovementConfig{
				SnapDistance: 2,
			},
		},
		Map: &MapConfig{
			Width:         20,
			Height:        20,
			CellSize:      32,
			DedupeCorners: true,
			Segments: []SegmentConfig{
				{From: PointConfig{X: 0, Y: 2}, To: PointConfig{X: 14, Y: 2}},
				{From: PointConfig{X: 14, Y: 2}, To: PointConfig{X: 14, Y: 6}},
				{From: PointConfig{X: 14, Y: 6}, To: PointConfig{X: 5, Y: 6}},
				{From: PointConfig{X: 5, Y: 6}, To: PointConfig{X: 5, Y: 10}},
				{From: PointConfig{X: 5, Y: 10}, To: PointConfig{X: 17, Y: 10}},
				{From: PointConfig{X: 17, Y: 10}, To: PointConfig{X: 17, Y: 14}},
				{From: PointConfig{X: 17, Y: 14}, To: PointConfig{X: 2, Y: 14}},
				{From: PointConfig{X: 2, Y: 14}, To: PointConfig{X: 2, Y: 18}},
				{From: PointConfig{X: 2, Y: 18}, To: PointConfig{X: 10, Y: 18}},
			},
		},
		Towers: &TowersConfig{
			Order: []string{"BASIC", "SNIPER", "CANNON", "LASER"},
			Types: map[string]TowerConfig{
				"BASIC": {
					Name:        "Basic Tower",
					Description: "A basic tower with balanced stats",
					Cost:        50,
					Damage:      10,
					Range:       3,
					FireRateMs:  1000,
					Color:       "#4A90E2",
				},
				"SNIPER": {
					Name:        "Sniper Tower",
					Description: "Long range, high damage, slow fire rate",
					Cost:        100,
					Damage:      40,
					Range:       6,
					FireRateMs:  2000,
					Color:       "#50C878",
				},
				"CANNON": {
					Name:        "Cannon Tower",
					Description: "Heavy hitting tower with moderate range",
					Cost:        80,
					Damage:      25,
					Range:       4,
					FireRateMs:  1500,
					Color:       "#E74C3C",
				},
				"LASER": {
					Name:        "Laser Tower",
					Description: "Rapid fire laser with continuous damage",
					Cost:        120,
					Damage:      8,
					Range:       5,
					FireRateMs:  300,
					Color:       "#9B59B6",
				},
			},
		},
		Enemies: &EnemiesConfig{
			Types: map[string]EnemyConfig{
				"BASIC": {Health: 50, Speed: 1, Reward: 10, Color: "#FF6B6B"},
				"FAST":  {Health: 30, Speed: 2, Reward: 15, Color: "#FFD93D"},
				"TANK":  {Health: 150, Speed: 0.5, Reward: 25, Color: "#6BCB77"},
				"BOSS":  {Health: 500, Speed: 0.3, Reward: 100, Color: "#9B59B6"},
			},
		},
		Waves: &WavesConfig{
			Predefined: []WaveConfig{
				{Groups: []GroupConfig{
					{Type: "BASIC", Count: 10, SpawnIntervalMs: 1000},
				}},
				{Groups: []GroupConfig{
					{Type: "BASIC", Count: 15, SpawnIntervalMs: 800},
					{Type: "FAST", Count: 5, SpawnIntervalMs: 1000},
				}},
				{Groups: []GroupConfig{
					{Type: "BASIC", Count: 10, SpawnIntervalMs: 700},
					{Type: "FAST", Count: 8, SpawnIntervalMs: 900},
					{Type: "TANK", Count: 2, SpawnIntervalMs: 2000},
				}},
				{Groups: []GroupConfig{
					{Type: "BASIC", Count: 20, SpawnIntervalMs: 600},
					{Type: "FAST", Count: 10, SpawnIntervalMs: 800},
					{Type: "TANK", Count: 5, SpawnIntervalMs: 1500},
				}},
				{Groups: []GroupConfig{
					{Type: "BASIC", Count: 15, SpawnIntervalMs: 500},
					{Type: "FAST", Count: 12, SpawnIntervalMs: 700},
					{Type: "TANK", Count: 5, SpawnIntervalMs: 1200},
					{Type: "BOSS", Count: 1, SpawnIntervalMs: 5000},
				}},
			},
			Endless: EndlessConfig{
				Groups: []EndlessGroupConfig{
					{Type: "BASIC", BaseCount: 15, CountPerLevel: 5, BaseIntervalMs: 600, IntervalStepMs: 20, MinIntervalMs: 400},
					{Type: "FAST", BaseCount: 12, CountPerLevel: 3, BaseIntervalMs: 800, IntervalStepMs: 30, MinIntervalMs: 500},
					{Type: "TANK", BaseCount: 5, CountPerLevel: 2, BaseIntervalMs: 1500, IntervalStepMs: 50, MinIntervalMs: 800},
				},
				BossType:       "BOSS",
				BossIntervalMs: 5000,
				LevelsPerBoss:  2,
			},
		},
	}
}

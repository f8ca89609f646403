package config

const (
	GameUnknown = iota
	GameAoE1
	GameRoR
	GameAoC
	GameSWGB
	GameDE1
	GameDE2
)

type GameVersion int

var gameVersion GameVersion

func GetGameVersion() GameVersion {
	return gameVersion
}

func SetGameVersion(v GameVersion) {
	gameVersion = v
}

func (v GameVersion) String() string {
	switch v {
	case GameAoE1:
		return "aoe1"
	case GameRoR:
		return "ror"
	case GameAoC:
		return "aoc"
	case GameSWGB:
		return "swgb"
	case GameDE1:
		return "de1"
	case GameDE2:
		return "de2"
	default:
		return "unknown"
	}
}

package config

import "time"

var DefaultTheme = Theme{
	Colors: ConfigColors{
		Covered:  244,
		Revealed: 236,
		Flag:     208,
		Mine:     255,
		Exploded: 160,
		CursorBG: 25,
		// 1 to 8, the classic palette
		Numbers: []int{21, 28, 196, 18, 88, 30, 255, 245},
	},
	Symbols: ConfigSymbols{
		Covered: '■',
		Empty:   '·',
		Flag:    '⚑',
		Mine:    '✹',
	},
}

// DefaultConfig returns a fresh copy of the built-in settings.
func DefaultConfig() Config {
	theme := DefaultTheme
	theme.Colors.Numbers = append([]int(nil), DefaultTheme.Colors.Numbers...)
	return Config{
		Mode:       "production",
		Difficulty: "Expert",
		ClockTick:  Duration{time.Second},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Theme: theme,
	}
}

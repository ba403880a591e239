package main

// Configuration is read from flags and environment variables.
type Configuration struct {
	Items      int     `usage:"number of items in the list"`
	StableIDs  bool    `usage:"give items stable ids so positions survive a reload"`
	WheelStep  int     `usage:"cells scrolled per wheel notch or arrow key"`
	Friction   float64 `usage:"fling friction, larger values stop sooner"`
	Border     bool    `usage:"draw a border around the list"`
	LogFile    string  `usage:"file receiving logs, empty disables logging"`
	LogLevel   string  `usage:"log level: debug | info | warn | error"`
	ShowConfig bool    `usage:"print config and exit"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Configuration {
	return Configuration{
		Items:     200,
		StableIDs: true,
		WheelStep: 3,
		Friction:  0.015,
		Border:    true,
		LogFile:   "",
		LogLevel:  "info",
	}
}

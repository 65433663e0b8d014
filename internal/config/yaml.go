package config

import "gopkg.in/yaml.v3"

type yamlBreath struct {
	DoubleClickWindow string `yaml:"double_click_window"`
	LockStep          string `yaml:"lock_step"`
	Panels            int    `yaml:"panels"`
}

type yamlDisplay struct {
	Colors    []string `yaml:"colors"`
	TextColor string   `yaml:"text_color"`
	DarkTheme bool     `yaml:"dark_theme"`
	FrameRate int      `yaml:"frame_rate"`
}

type yamlCues struct {
	Sound       bool `yaml:"sound"`
	Notify      bool `yaml:"notify"`
	NotifyEvery int  `yaml:"notify_every"`
}

type yamlSettings struct {
	Cmd string `yaml:"cmd"`
}

type yamlConfig struct {
	Breath   yamlBreath   `yaml:"breath"`
	Display  yamlDisplay  `yaml:"display"`
	Cues     yamlCues     `yaml:"cues"`
	Settings yamlSettings `yaml:"settings"`
}

// YAML renders the effective configuration in the layout of the config file.
func (c *Config) YAML() ([]byte, error) {
	doc := yamlConfig{
		Breath: yamlBreath{
			DoubleClickWindow: c.Breath.DoubleClickWindow.String(),
			LockStep:          c.Breath.LockStep.String(),
			Panels:            c.Breath.Panels,
		},
		Display: yamlDisplay{
			Colors:    c.Display.Colors,
			TextColor: c.Display.TextColor,
			DarkTheme: c.Display.DarkTheme,
			FrameRate: c.Display.FrameRate,
		},
		Cues: yamlCues{
			Sound:       c.Cues.Sound,
			Notify:      c.Cues.Notify,
			NotifyEvery: c.Cues.NotifyEvery,
		},
		Settings: yamlSettings{
			Cmd: c.Settings.Cmd,
		},
	}

	return yaml.Marshal(doc)
}

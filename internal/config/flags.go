package config

import "flag"

// flagValues holds raw flag results; only flags the user set are applied.
type flagValues struct {
	apiURL     string
	memory     bool
	demo       bool
	theme      string
	logLevel   string
	configFile string
	group      bool
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	fv := &flagValues{}
	fs.StringVar(&fv.apiURL, "api", "", "base URL of the todo REST service")
	fs.BoolVar(&fv.memory, "memory", false, "keep todos in memory only (nothing is persisted)")
	fs.BoolVar(&fv.demo, "demo", false, "start the in-memory list with sample todos")
	fs.StringVar(&fv.theme, "theme", "", "color theme: classic, neon or mono")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&fv.configFile, "config", "", "path to a todo.toml or todo.yaml file")
	fs.BoolVar(&fv.group, "group", false, "group output by pending/done")
	return fv
}

func (fv *flagValues) apply(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api":
			cfg.APIURL = fv.apiURL
		case "memory":
			if fv.memory {
				cfg.Mode = ModeMemory
			} else {
				cfg.Mode = ModeBackend
			}
		case "demo":
			cfg.Demo = fv.demo
		case "theme":
			cfg.Theme = fv.theme
		case "log-level":
			cfg.LogLevel = fv.logLevel
		case "group":
			cfg.Group = fv.group
		}
	})
}

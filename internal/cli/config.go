package cli

import (
	"context"
	"path/filepath"

	"github.com/piwi3910/tagcloud/internal/model"
	"github.com/piwi3910/tagcloud/internal/project"
)

// appEnv is the configuration loaded once per invocation.
type appEnv struct {
	configPath string
	config     model.AppConfig
}

// presetsPath keeps presets next to the config file.
func (e appEnv) presetsPath() string {
	return filepath.Join(filepath.Dir(e.configPath), "presets.json")
}

// settings returns the default layout settings from the config.
func (e appEnv) settings() model.LayoutSettings {
	s := model.DefaultSettings()
	e.config.ApplyToSettings(&s)
	return s
}

func loadEnv(path string) (appEnv, error) {
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return appEnv{}, err
	}
	return appEnv{configPath: path, config: cfg}, nil
}

func withEnv(ctx context.Context, e appEnv) context.Context {
	return context.WithValue(ctx, configKey, e)
}

// envFromContext returns the loaded environment, or defaults when none is set.
func envFromContext(ctx context.Context) appEnv {
	if e, ok := ctx.Value(configKey).(appEnv); ok {
		return e
	}
	return appEnv{configPath: project.DefaultConfigPath(), config: model.DefaultAppConfig()}
}

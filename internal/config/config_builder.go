package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	flags   *StructuredConfig
	dotEnv  map[string]string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
		dotEnv:  map[string]string{},
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	sources := b.configs
	if b.flags != nil {
		sources = append(sources, b.flags)
	}

	config := new(StructuredConfig)
	for _, cfg := range sources {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

// withDotEnv reads the .env file named by the -env-file flag, ENV_FILE or the
// default location. Values are kept in the builder and never exported to the
// process environment.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := lookupEnvFilePath(b.flags)

	values, err := readDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.dotEnv = values
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.dotEnv); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

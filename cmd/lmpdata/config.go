/*
 * config.go, part of lmpdata.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LMPDATA"

type logConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type config struct {
	Title string    `mapstructure:"title"`
	Log   logConfig `mapstructure:"log"`
}

//newViper returns a viper that reads YAML and takes LMPDATA_ environment
//variables, with "." replaced by "_" (log.level is LMPDATA_LOG_LEVEL).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("title", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	return v
}

//loadConfig reads the configuration from the file path, if not empty, and from
//the environment. v can have flags already bound to it.
func loadConfig(v *viper.Viper, path string) (*config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("can't read config file %q: %w", path, err)
		}
	}
	c := new(config)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("can't decode configuration: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q, use console or json", c.Log.Format)
	}
	return c, nil
}

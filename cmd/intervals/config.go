package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/gethiox/intervals/internal/pkg/interval"
	"github.com/gethiox/intervals/internal/pkg/logger"
	"github.com/go-ini/ini"
)

type Intervals struct {
	DefaultDirection interval.Direction
}

type Output struct {
	Color      bool
	NoteColors bool
}

type Config struct {
	Intervals Intervals
	Output    Output
}

//go:embed intervals-config/intervals.config
var templateConfig []byte

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read \"%s\" config: %w", path, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config: %w", err)
	}

	var c Config

	// [intervals]
	intervals, err := cfg.GetSection("intervals")
	if err != nil {
		return Config{}, err
	}
	direction, err := intervals.GetKey("default_direction")
	if err != nil {
		return Config{}, err
	}
	// blank value keeps ascending default
	if direction.String() != "" {
		c.Intervals.DefaultDirection, err = interval.ParseDirection(direction.String())
		if err != nil {
			return Config{}, fmt.Errorf("default_direction: %w", err)
		}
	}

	// [output]
	output, err := cfg.GetSection("output")
	if err != nil {
		return Config{}, err
	}
	color, err := output.GetKey("color")
	if err != nil {
		return Config{}, err
	}
	c.Output.Color, err = color.Bool()
	if err != nil {
		return Config{}, fmt.Errorf("color: %w", err)
	}
	// optional, follows color when missing
	c.Output.NoteColors = output.Key("note_colors").MustBool(c.Output.Color)

	return c, nil
}

// createConfigIfNeeded writes default config when there is none yet, existing file stays intact.
func createConfigIfNeeded(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot stat \"%s\" config: %w", path, err)
	}

	log.Info(fmt.Sprintf("config \"%s\" not exist, generating...", path), logger.Info)
	err = os.WriteFile(path, templateConfig, 0o666)
	if err != nil {
		return fmt.Errorf("cannot write \"%s\" config: %w", path, err)
	}
	return nil
}

package config

import (
	"os"
	"strconv"
	"strings"

	"ovpkit/domain/histogram"
	"ovpkit/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths     PathConfig
	Histogram HistogramConfig
	Curve     CurveConfig
	Chart     ChartConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	InputFile string
	OutDir    string
}

// HistogramConfig holds binning settings
type HistogramConfig struct {
	Edges           []float64
	ScoreColumn     string
	HeadcountColumn string
}

// CurveConfig holds curve sampling settings
type CurveConfig struct {
	PointsPerSegment int
}

// ChartConfig holds preview rendering settings
type ChartConfig struct {
	Width  int
	Height int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	edges, err := loadEdges()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bin edges")
	}

	config := &Config{
		Paths: PathConfig{
			InputFile: getEnvOrDefault("OVP_INPUT_FILE", ""),
			OutDir:    getEnvOrDefault("OVP_OUT_DIR", "."),
		},
		Histogram: HistogramConfig{
			Edges:           edges,
			ScoreColumn:     getEnvOrDefault("OVP_SCORE_COLUMN", "Average OVP"),
			HeadcountColumn: getEnvOrDefault("OVP_HEADCOUNT_COLUMN", "Headcount"),
		},
		Curve: CurveConfig{
			PointsPerSegment: getEnvIntOrDefault("OVP_POINTS_PER_SEGMENT", 60),
		},
		Chart: ChartConfig{
			Width:  getEnvIntOrDefault("OVP_CHART_WIDTH", 1024),
			Height: getEnvIntOrDefault("OVP_CHART_HEIGHT", 640),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadEdges() ([]float64, error) {
	raw := os.Getenv("OVP_EDGES")
	if raw == "" {
		return histogram.DefaultEdges(), nil
	}

	parts := strings.Split(raw, ",")
	edges := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.ConfigInvalid("OVP_EDGES must be a comma-separated list of numbers")
		}
		edges = append(edges, v)
	}
	return edges, nil
}

func validateConfig(config *Config) error {
	if err := histogram.ValidateEdges(config.Histogram.Edges); err != nil {
		return errors.ConfigInvalid("bin edges must be at least two and strictly ascending")
	}
	if config.Curve.PointsPerSegment < 4 {
		return errors.ConfigInvalid("points per segment must be at least 4")
	}
	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	if config.Histogram.ScoreColumn == "" || config.Histogram.HeadcountColumn == "" {
		return errors.ConfigInvalid("score and headcount column names are required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Default tuning of the simulation.
const (
	NumBoids = 300

	WorldWidth  = 1280
	WorldHeight = 720

	MinSpeed        = 2.0
	MaxSpeed        = 4.5
	InitialVelocity = MinSpeed + 1

	ProximityRange = 20.0
	VisibleRange   = ProximityRange + 50

	AvoidFactor    = 0.05
	MatchingFactor = 0.2
	CohesionFactor = 0.001

	BoundaryMargin = 200.0
	TurnFactor     = 0.1
)

const schemaURL = "config.schema.json"

//go:embed config.schema.json
var schemaSource string

// ErrInvalidConfig is returned when a configuration is well formed but inconsistent.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Population
	NumBoids int `json:"numBoids"`

	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Speed limits
	MinSpeed        float64 `json:"minSpeed"`
	MaxSpeed        float64 `json:"maxSpeed"`
	InitialVelocity float64 `json:"initialVelocity"` // Upper bound of each starting velocity component

	// Boids flocking parameters
	ProximityRange float64 `json:"proximityRange"` // Personal space radius
	VisibleRange   float64 `json:"visibleRange"`   // How far can they see?

	AvoidFactor    float64 `json:"avoidFactor"`    // Separation strength
	MatchingFactor float64 `json:"matchingFactor"` // Alignment strength
	CohesionFactor float64 `json:"cohesionFactor"` // Cohesion strength

	BoundaryMargin float64 `json:"boundaryMargin"`
	TurnFactor     float64 `json:"turnFactor"` // Edge turning strength
}

func DefaultConfig() *Config {
	return &Config{
		NumBoids:        NumBoids,
		WorldWidth:      WorldWidth,
		WorldHeight:     WorldHeight,
		MinSpeed:        MinSpeed,
		MaxSpeed:        MaxSpeed,
		InitialVelocity: InitialVelocity,
		ProximityRange:  ProximityRange,
		VisibleRange:    VisibleRange,
		AvoidFactor:     AvoidFactor,
		MatchingFactor:  MatchingFactor,
		CohesionFactor:  CohesionFactor,
		BoundaryMargin:  BoundaryMargin,
		TurnFactor:      TurnFactor,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the
// embedded schema. Keys absent from the file keep their default value.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString(schemaURL, schemaSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the relations between fields that the schema cannot express.
func (c *Config) Validate() error {
	switch {
	case c.NumBoids < 1:
		return fmt.Errorf("%w: numBoids must be at least 1, got %d", ErrInvalidConfig, c.NumBoids)
	case c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("%w: maxSpeed %.2f is below minSpeed %.2f", ErrInvalidConfig, c.MaxSpeed, c.MinSpeed)
	case c.VisibleRange < c.ProximityRange:
		return fmt.Errorf("%w: visibleRange %.2f is below proximityRange %.2f", ErrInvalidConfig, c.VisibleRange, c.ProximityRange)
	case 2*c.BoundaryMargin >= c.WorldWidth || 2*c.BoundaryMargin >= c.WorldHeight:
		return fmt.Errorf("%w: boundaryMargin %.2f leaves no room inside a %.0fx%.0f world",
			ErrInvalidConfig, c.BoundaryMargin, c.WorldWidth, c.WorldHeight)
	}
	return nil
}

// Settings converts the configuration into the engine physics constants.
func (c *Config) Settings() flock.Settings {
	return flock.Settings{
		Width:           c.WorldWidth,
		Height:          c.WorldHeight,
		MinSpeed:        c.MinSpeed,
		MaxSpeed:        c.MaxSpeed,
		ProximityRange:  c.ProximityRange,
		VisibleRange:    c.VisibleRange,
		AvoidFactor:     c.AvoidFactor,
		MatchingFactor:  c.MatchingFactor,
		CohesionFactor:  c.CohesionFactor,
		BoundaryMargin:  c.BoundaryMargin,
		TurnFactor:      c.TurnFactor,
		InitialVelocity: c.InitialVelocity,
	}
}

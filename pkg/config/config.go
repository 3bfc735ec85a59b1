package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsing is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsing = errors.New("failed to parse environment into config")
	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

var loaded = struct {
	sync.Mutex
	dotenv sync.Once
	values map[string]any
}{values: make(map[string]any)}

// Load populates cfg from environment variables using `env` struct tags.
// A .env file in the working directory is applied once per process if
// present. Each config type is parsed at most once; repeated calls for
// the same type return the cached copy.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	loaded.dotenv.Do(func() {
		// Missing .env is fine; real environments set variables directly.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	loaded.Lock()
	defer loaded.Unlock()

	if cached, ok := loaded.values[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsing, err)
	}
	loaded.values[key] = *cfg
	return nil
}

// MustLoad is Load for configuration without which the process cannot
// start; it panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops all cached configs. Intended for tests that mutate the
// environment between loads.
func Reset() {
	loaded.Lock()
	defer loaded.Unlock()
	loaded.values = make(map[string]any)
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}

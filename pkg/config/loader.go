package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)

	dotenvOnce sync.Once
)

// Load parses the environment into v. The first successful load of a type
// is cached and returned to every later caller, so configuration is read
// exactly once per process.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	if existing, ok := cache[key]; ok {
		parsed = existing.(T)
	} else {
		cache[key] = parsed
	}
	cacheMu.Unlock()

	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFile decodes the YAML document at path on top of v. Keys absent from
// the document leave the corresponding fields untouched; unknown keys are
// rejected so typos in the policy file fail start-up.
func LoadFile(path string, v any) error {
	if v == nil {
		return ErrNilPointer
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrParsingFile, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	cache = make(map[reflect.Type]any)
	cacheMu.Unlock()
}

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
	ErrParsingConfig = errors.New("config.errors.parsing_failed")
	ErrNilPointer    = errors.New("config.errors.nil_pointer")
)

var (
	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[string]any)
)

// Load fills v from environment variables using `env` struct tags. The .env
// file, when present, is read once per process before the first parse. Each
// struct type is parsed once; later calls return the cached value.
//
//	type BrandConfig struct {
//		StoreName string `env:"BRAND_STORE_NAME"`
//		Primary   string `env:"BRAND_PRIMARY_COLOR" envDefault:"#2563eb"`
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env is fine; real environments set variables directly.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = *v
	return nil
}

// MustLoad panics when Load fails. Use for configuration the process cannot
// start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
